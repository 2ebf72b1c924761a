package core

import (
	"fmt"
	"strings"
)

// StateCode is the two letter code of a brazilian federative unit (UF), e.g. "SP".
type StateCode string

// StateOption is a selectable option of the state dropdown.
type StateOption struct {
	Code StateCode
	Name string
}

var states = []StateOption{
	{"AC", "Acre"},
	{"AL", "Alagoas"},
	{"AP", "Amapá"},
	{"AM", "Amazonas"},
	{"BA", "Bahia"},
	{"CE", "Ceará"},
	{"DF", "Distrito Federal"},
	{"ES", "Espírito Santo"},
	{"GO", "Goiás"},
	{"MA", "Maranhão"},
	{"MT", "Mato Grosso"},
	{"MS", "Mato Grosso do Sul"},
	{"MG", "Minas Gerais"},
	{"PA", "Pará"},
	{"PB", "Paraíba"},
	{"PR", "Paraná"},
	{"PE", "Pernambuco"},
	{"PI", "Piauí"},
	{"RJ", "Rio de Janeiro"},
	{"RN", "Rio Grande do Norte"},
	{"RS", "Rio Grande do Sul"},
	{"RO", "Rondônia"},
	{"RR", "Roraima"},
	{"SC", "Santa Catarina"},
	{"SP", "São Paulo"},
	{"SE", "Sergipe"},
	{"TO", "Tocantins"},
}

// StateOptions returns the options of the state dropdown: an empty placeholder followed by every
// federative unit.
func StateOptions() []StateOption {
	options := make([]StateOption, 0, len(states)+1)
	options = append(options, StateOption{"", "Escolha um estado"})
	return append(options, states...)
}

// ParseStateCode parses a case-insensitive state code.
func ParseStateCode(value string) (StateCode, error) {
	code := StateCode(strings.ToUpper(strings.TrimSpace(value)))
	for _, state := range states {
		if state.Code == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown state code %q", value)
}

// Name returns the full name of the state, or the code itself if it is unknown.
func (code StateCode) Name() string {
	for _, state := range states {
		if state.Code == code {
			return state.Name
		}
	}
	return string(code)
}
