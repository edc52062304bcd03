package validation

import "strings"

// Digits remove tudo que não for dígito.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF valida os dois dígitos verificadores pelo módulo 11.
// Sequências com todos os dígitos iguais são rejeitadas.
func ValidCPF(cpf string) bool {
	clean := Digits(cpf)
	if len(clean) != 11 {
		return false
	}
	allEqual := true
	for i := 1; i < 11; i++ {
		if clean[i] != clean[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}
	if checkDigit(clean, 9) != int(clean[9]-'0') {
		return false
	}
	if checkDigit(clean, 10) != int(clean[10]-'0') {
		return false
	}
	return true
}

// checkDigit calcula o dígito verificador sobre os primeiros n dígitos,
// com pesos n+1..2; resto 10 ou 11 vira 0.
func checkDigit(clean string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(clean[i]-'0') * (n + 1 - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 || rem == 11 {
		rem = 0
	}
	return rem
}

// FormatCPF aplica a máscara 000.000.000-00 para exibição.
// Entrada que não tenha 11 dígitos volta como está (só dígitos).
func FormatCPF(cpf string) string {
	clean := Digits(cpf)
	if len(clean) != 11 {
		return clean
	}
	return clean[0:3] + "." + clean[3:6] + "." + clean[6:9] + "-" + clean[9:11]
}
