package utils

import (
	"crypto/rand"
	"log"
	"math/big"
	"os"
	"time"

	"fbs/src/types"

	"github.com/golang-jwt/jwt/v4"
)

const pnrCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePNR returns a booking reference of the form PNR-XXXXXX with six
// characters drawn uniformly from A-Z0-9. Codes are not checked for
// collisions against existing bookings.
func GeneratePNR() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		bi, err := rand.Int(rand.Reader, big.NewInt(int64(len(pnrCharset))))
		if err != nil {
			log.Printf("Error generating PNR character: %s\n", err.Error())
			bi = big.NewInt(0)
		}
		suffix[i] = pnrCharset[bi.Int64()]
	}
	return "PNR-" + string(suffix)
}

func GenerateJWT(email string, role string) (string, error) {
	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	claims := types.Claims{
		Username: email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(jwtKey)
}

func IsProd() bool {
	return os.Getenv("API_ENV") == string(types.Production)
}
