package middleware

import (
	"context"
	"net/http"
	"strings"

	"commitchronicles/internal/pkg/token"
)

// ContextKey é um tipo próprio para chaves de contexto, evitando colisão com
// chaves string de outros pacotes.
type ContextKey int

const (
	// JogadorClaimsKey é a chave usada para armazenar as claims do jogador no contexto.
	JogadorClaimsKey ContextKey = iota
)

// JogadorClaims representa os dados do jogador extraídos do token JWT,
// anexados ao contexto da requisição.
type JogadorClaims struct {
	UserID    string
	UserName  string
	UserEmail string
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria uma função de middleware que valida um JWT do header
// Authorization e anexa as claims do jogador ao contexto da requisição.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			// 1. Extrair o token do header "Authorization: Bearer <token>"
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Token de autorização ausente ou malformado.", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			// 2. Validar o token
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Token inválido ou expirado.", http.StatusUnauthorized)
				return
			}

			// 3. Anexar as claims ao contexto
			jogadorClaims := JogadorClaims{
				UserID:    claims.UserID,
				UserName:  claims.UserName,
				UserEmail: claims.UserEmail,
			}

			ctx := context.WithValue(r.Context(), JogadorClaimsKey, jogadorClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetJogadorClaimsFromContext extrai as claims do jogador no handler.
func GetJogadorClaimsFromContext(ctx context.Context) (JogadorClaims, bool) {
	claims, ok := ctx.Value(JogadorClaimsKey).(JogadorClaims)
	return claims, ok
}
