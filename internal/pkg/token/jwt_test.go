package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"commitchronicles/internal/domain"
	"commitchronicles/internal/pkg/token"
)

// TestGenerateEValidate testa o ciclo completo: assinar e validar.
func TestGenerateEValidate(t *testing.T) {
	svc := token.NewService("chave-de-teste", "system_tasks", "seus_usuarios", time.Hour)

	jogador := domain.Jogador{
		ID:        uuid.NewString(),
		UserName:  "Ana",
		UserEmail: "ana@x.com",
	}

	tokenString, err := svc.GenerateToken(jogador)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, jogador.ID, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, "ana@x.com", claims.UserEmail)
	assert.Equal(t, jogador.ID, claims.Subject)
	assert.Equal(t, "system_tasks", claims.Issuer)
	assert.Contains(t, claims.Audience, "seus_usuarios")

	// Validade de 1 hora a partir da emissão
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

// TestValidate_Fail_ChaveErrada testa um token assinado com outra chave.
func TestValidate_Fail_ChaveErrada(t *testing.T) {
	emissor := token.NewService("chave-a", "system_tasks", "seus_usuarios", time.Hour)
	validador := token.NewService("chave-b", "system_tasks", "seus_usuarios", time.Hour)

	tokenString, err := emissor.GenerateToken(domain.Jogador{ID: uuid.NewString(), UserName: "Ana", UserEmail: "ana@x.com"})
	assert.NoError(t, err)

	_, err = validador.ValidateToken(tokenString)
	assert.Error(t, err)
}

// TestValidate_Fail_IssuerDivergente testa a verificação de issuer/audience.
func TestValidate_Fail_IssuerDivergente(t *testing.T) {
	emissor := token.NewService("chave", "outro_emissor", "seus_usuarios", time.Hour)
	validador := token.NewService("chave", "system_tasks", "seus_usuarios", time.Hour)

	tokenString, err := emissor.GenerateToken(domain.Jogador{ID: uuid.NewString()})
	assert.NoError(t, err)

	_, err = validador.ValidateToken(tokenString)
	assert.Error(t, err)
}

// TestValidate_Fail_Expirado testa um token com validade vencida.
func TestValidate_Fail_Expirado(t *testing.T) {
	svc := token.NewService("chave", "system_tasks", "seus_usuarios", -time.Minute)

	tokenString, err := svc.GenerateToken(domain.Jogador{ID: uuid.NewString()})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

// TestValidate_Fail_Lixo testa uma string que não é um JWT.
func TestValidate_Fail_Lixo(t *testing.T) {
	svc := token.NewService("chave", "system_tasks", "seus_usuarios", time.Hour)

	_, err := svc.ValidateToken("isto-nao-e-um-token")
	assert.Error(t, err)
}
