// Package password хеширует пароли сидируемых пользователей (bcrypt, соль на каждый хеш).
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost — стоимость bcrypt по умолчанию (12, как у gensalt)
const DefaultCost = 12

// Hash возвращает bcrypt-хеш пароля. cost вне [bcrypt.MinCost, bcrypt.MaxCost] заменяется на DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

// Check сверяет пароль с хешем
func Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
