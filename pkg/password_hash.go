package pkg

import "golang.org/x/crypto/bcrypt"

// bcrypt embeds a fresh random salt into every produced hash, so
// verification needs no separate salt storage.
const bcryptCost = 14

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
