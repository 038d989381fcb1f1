package myjwt

import (
	"OssLarare/internal/config"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Uuid     string `json:"uuid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type settings struct {
	key         []byte
	issuer      string
	expireHours int
}

var (
	mu  sync.RWMutex
	cur *settings
)

// Init 显式设置签名参数；未调用时首次使用从 config 读取
func Init(key, issuer string, expireHours int) {
	if expireHours <= 0 {
		expireHours = 24
	}
	mu.Lock()
	cur = &settings{key: []byte(key), issuer: issuer, expireHours: expireHours}
	mu.Unlock()
}

func current() settings {
	mu.RLock()
	s := cur
	mu.RUnlock()
	if s != nil {
		return *s
	}
	conf := config.GetConfig()
	issuer := conf.JwtConfig.Issuer
	if issuer == "" {
		issuer = conf.MainConfig.AppName
	}
	Init(conf.JwtConfig.Key, issuer, conf.JwtConfig.ExpireHours)
	return current()
}

func GenerateToken(uuid string, username string) (string, error) {
	s := current()
	if len(s.key) == 0 {
		return "", errors.New("jwt key is empty")
	}

	now := time.Now()
	claims := CustomClaims{
		Uuid:     uuid,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	s := current()
	if len(s.key) == 0 {
		return nil, errors.New("jwt key is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
