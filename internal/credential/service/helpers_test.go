package service

// tamperAt returns a copy of encoded with the character at index replaced by a
// different character from the base64 alphabet.
func tamperAt(encoded string, index int) string {
	replacement := byte('A')
	if encoded[index] == replacement {
		replacement = 'B'
	}
	out := []byte(encoded)
	out[index] = replacement
	return string(out)
}
