package auth

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "symbols", password: "P@ssw0rd!#$%"},
		{name: "unicode", password: "密码123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == "" || hash == tt.password {
				t.Errorf("Hash() returned %q", hash)
			}
			if !hasher.Verify(tt.password, hash) {
				t.Error("Verify() = false for correct password")
			}
			if hasher.Verify("wrong-password", hash) {
				t.Error("Verify() = true for wrong password")
			}
		})
	}
}

func TestPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher()

	h1, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}
