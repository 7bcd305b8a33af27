package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Passw0rd1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Passw0rd1" {
		t.Fatalf("hash equals plaintext")
	}

	if !Verify("Passw0rd1", hash) {
		t.Fatalf("Verify rejected correct password")
	}
	if Verify("wrong", hash) {
		t.Fatalf("Verify accepted wrong password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("Verify accepted malformed hash")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Passw0rd1", true},
		{"too short", "Pw1", false},
		{"no digit", "Password", false},
		{"no letter", "12345678", false},
		{"exactly eight", "abcdefg1", true},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidatePassword(tc.password); got != tc.want {
				t.Fatalf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}
