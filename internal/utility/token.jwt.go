package utility

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/munkhjinod/erxes-api/internal/common"
)

// CreateToken tạo JWT token chứa userId, thời điểm tạo và số ngẫu nhiên
// Trả về map có key "token" chứa chuỗi JWT đã ký
func CreateToken(jwtSecret string, userID string, t string, randomNumber string) (map[string]string, error) {
	claims := jwt.MapClaims{
		"userId":       userID,
		"time":         t,
		"randomNumber": randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// VerifyToken kiểm tra chữ ký JWT token và trả về userId bên trong
func VerifyToken(jwtSecret string, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", common.ErrTokenInvalid
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return "", common.ErrTokenInvalid
	}
	return userID, nil
}
