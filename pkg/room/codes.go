package room

import "screwyourneighbor-server/internal/rng"

// roomCodeLength is the length of the short, human-typeable room code
const roomCodeLength = 5

// ambiguous characters (0/O, 1/I) are left out
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// randomCode generates a candidate room code
// Uniqueness is the registry's responsibility; it checks the generated code
// against the live rooms and retries on a collision
func randomCode(gen rng.Generator) string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = codeAlphabet[gen.Intn(len(codeAlphabet))]
	}

	return string(code)
}
