// Package docfiscal validates and formats Brazilian fiscal documents
// (CPF and CNPJ) using their check-digit algorithms.
package docfiscal

import (
	"fmt"
	"strings"
)

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether s contains a valid CPF (11 digits, check digits
// verified). Repeated-digit sequences like 111.111.111-11 are rejected.
func ValidCPF(s string) bool {
	cpf := OnlyDigits(s)
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}

	soma := 0
	for i := 0; i < 9; i++ {
		soma += int(cpf[i]-'0') * (10 - i)
	}
	d1 := (soma * 10) % 11
	if d1 == 10 {
		d1 = 0
	}

	soma = 0
	for i := 0; i < 10; i++ {
		soma += int(cpf[i]-'0') * (11 - i)
	}
	d2 := (soma * 10) % 11
	if d2 == 10 {
		d2 = 0
	}

	return int(cpf[9]-'0') == d1 && int(cpf[10]-'0') == d2
}

var (
	cnpjPesos1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjPesos2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ reports whether s contains a valid CNPJ (14 digits, check
// digits verified).
func ValidCNPJ(s string) bool {
	cnpj := OnlyDigits(s)
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}

	soma := 0
	for i := 0; i < 12; i++ {
		soma += int(cnpj[i]-'0') * cnpjPesos1[i]
	}
	d1 := 11 - (soma % 11)
	if d1 >= 10 {
		d1 = 0
	}

	soma = 0
	for i := 0; i < 13; i++ {
		soma += int(cnpj[i]-'0') * cnpjPesos2[i]
	}
	d2 := 11 - (soma % 11)
	if d2 >= 10 {
		d2 = 0
	}

	return int(cnpj[12]-'0') == d1 && int(cnpj[13]-'0') == d2
}

// ValidDocumento accepts either document kind, deciding by digit count.
func ValidDocumento(s string) bool {
	switch len(OnlyDigits(s)) {
	case 11:
		return ValidCPF(s)
	case 14:
		return ValidCNPJ(s)
	default:
		return false
	}
}

// FormatCPF renders 11 digits as 000.000.000-00. Anything else is
// returned unchanged.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) != 11 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
}

// FormatCNPJ renders 14 digits as 00.000.000/0000-00. Anything else is
// returned unchanged.
func FormatCNPJ(s string) string {
	d := OnlyDigits(s)
	if len(d) != 14 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

// FormatDocumento formats whichever document kind the digit count implies.
func FormatDocumento(s string) string {
	switch len(OnlyDigits(s)) {
	case 11:
		return FormatCPF(s)
	case 14:
		return FormatCNPJ(s)
	default:
		return s
	}
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
