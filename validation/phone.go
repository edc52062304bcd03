package validation

// ValidPhone aceita telefones brasileiros com 10 (fixo) ou 11 (celular)
// dígitos depois de limpar a máscara.
func ValidPhone(phone string) bool {
	n := len(Digits(phone))
	return n == 10 || n == 11
}

// FormatPhone aplica (DD) DDDD-DDDD ou (DD) DDDDD-DDDD conforme o número
// de dígitos. Outros comprimentos voltam sem máscara.
func FormatPhone(phone string) string {
	clean := Digits(phone)
	switch len(clean) {
	case 10:
		return "(" + clean[0:2] + ") " + clean[2:6] + "-" + clean[6:10]
	case 11:
		return "(" + clean[0:2] + ") " + clean[2:7] + "-" + clean[7:11]
	default:
		return clean
	}
}
