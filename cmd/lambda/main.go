package main

import (
	"context"

	"profitcalc/cmd"
	"profitcalc/internal/logger"
	"profitcalc/internal/util"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	lg := logger.New()
	ctx := logger.NewContext(context.Background(), lg)

	cfg, err := util.LoadConfig()
	if err != nil {
		lg.Fatalw("failed to load config", "error", err)
	}

	apiHandler, err := cmd.InitializeDependencies(ctx, cfg)
	if err != nil {
		lg.Fatalw("failed to initialize dependencies", "error", err)
	}
	defer cmd.CloseDependencies(apiHandler)

	// the engine is built once per container and reused across invocations
	handler := lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
