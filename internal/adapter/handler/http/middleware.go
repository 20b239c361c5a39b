package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robekc/topup-service/internal/core/domain"
	"go.uber.org/zap"
)

const signatureHeaderKey = "X-Gateway-Signature"
const authHeaderKey = "Authorization"
const authType = "Bearer"

// maxWebhookBody caps the unauthenticated request body read ahead of the
// signature check. Gateway callbacks are a few hundred bytes.
const maxWebhookBody = 64 << 10

// webhookSignatureCheck verifies the gateway HMAC before any state is
// touched. The signature is hex HMAC-SHA256 of the raw request body under
// the shared secret.
func webhookSignatureCheck(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBody))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": domain.ErrBadRequest.Error()})
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		want := hex.EncodeToString(mac.Sum(nil))

		got := ctx.GetHeader(signatureHeaderKey)
		if got == "" || !hmac.Equal([]byte(want), []byte(got)) {
			logger.Warn("webhook signature mismatch",
				zap.String("remote", ctx.ClientIP()))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidSignature.Error()})
			return
		}

		ctx.Next()
	}
}

// adminCheck guards the admin group with the static token from config.
func adminCheck(token string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		words := strings.Split(header, " ")
		if len(words) != 2 || words[0] != authType {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		if token == "" ||
			subtle.ConstantTimeCompare([]byte(words[1]), []byte(token)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		ctx.Next()
	}
}
