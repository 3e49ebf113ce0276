package security

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword : возвращает bcrypt хэш пароля (соль генерируется bcrypt)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword : сверяет пароль с сохранённым хэшем.
// Любая ошибка сравнения (битый хэш, слишком длинный пароль) означает "не совпало"
func CheckPassword(password, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
