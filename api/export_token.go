package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"profitcalc/internal/domain"
	"profitcalc/internal/service"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrExpiredCalculation = errors.New("Calculation data has expired. Please recalculate before exporting.")
	ErrInvalidCalculation = errors.New("Invalid calculation data. Please recalculate before exporting.")
)

// exportClaims carry a computed projection from /calculate to the export
// endpoints, so exports never recompute and never hit the db.
type exportClaims struct {
	jwt.StandardClaims
	UserName  string                   `json:"name"`
	UserEmail string                   `json:"email"`
	Summary   domain.ProjectionSummary `json:"summary"`
}

type ExportTokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

func NewExportTokenIssuer(secret string, ttl time.Duration) ExportTokenIssuer {
	return ExportTokenIssuer{
		Secret: []byte(secret),
		TTL:    ttl,
		now:    time.Now,
	}
}

func (e ExportTokenIssuer) currentTime() time.Time {
	if e.now == nil {
		return time.Now()
	}
	return e.now()
}

func (e ExportTokenIssuer) Issue(calculationID uuid.UUID, contact service.Contact, summary domain.ProjectionSummary) (string, error) {
	issuedAt := e.currentTime().UTC()
	claims := exportClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        calculationID.String(),
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(e.TTL).Unix(),
		},
		UserName:  contact.UserName,
		UserEmail: contact.UserEmail,
		Summary:   summary,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(e.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign export token: %w", err)
	}
	return token, nil
}

// Parse verifies an export token. Every failure maps to one of
// service.ErrNoCalculationData, ErrExpiredCalculation or
// ErrInvalidCalculation.
func (e ExportTokenIssuer) Parse(tokenStr string) (*exportClaims, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return nil, service.ErrNoCalculationData
	}

	claims := &exportClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return e.Secret, nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorSignatureInvalid == 0 && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredCalculation
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCalculation, err.Error())
	}

	if !claims.Summary.IsComplete() {
		return nil, service.ErrNoCalculationData
	}

	return claims, nil
}
