package core

// ErrorKind classifies the error codes returned by the Correios services.
type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	ErrorKindInvalidPostalCode
	ErrorKindRegionNotServed
	ErrorKindServiceUnavailable
)

const (
	codeInvalidPostalCode  = "-3"
	codeRegionNotServed    = "-6"
	codeServiceUnavailable = "-33"
)

const (
	MessageInvalidPostalCode  = "CEP inválido!"
	MessageRegionNotServed    = "Infelizmente os Correios não oferece serviço para o trecho do CEP informado!"
	MessageServiceUnavailable = "Sistema dos Correios está fora do ar, logo, não foi possível obter o valor do frete!"
	messageOtherPrefix        = "Erro retornado pelos correios: "
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidPostalCode:
		return "invalid_postal_code"
	case ErrorKindRegionNotServed:
		return "region_not_served"
	case ErrorKindServiceUnavailable:
		return "service_unavailable"
	default:
		return "other"
	}
}

// ClassifyZipCodeError maps a Correios error code to its kind.
func ClassifyZipCodeError(code string) ErrorKind {
	switch code {
	case codeInvalidPostalCode:
		return ErrorKindInvalidPostalCode
	case codeRegionNotServed:
		return ErrorKindRegionNotServed
	case codeServiceUnavailable:
		return ErrorKindServiceUnavailable
	default:
		return ErrorKindOther
	}
}

// ZipCodeErrorMessage returns the customer facing message for a Correios error code.
// Unknown codes return a generic message that embeds msg verbatim.
func ZipCodeErrorMessage(code string, msg string) string {
	switch ClassifyZipCodeError(code) {
	case ErrorKindInvalidPostalCode:
		return MessageInvalidPostalCode
	case ErrorKindRegionNotServed:
		return MessageRegionNotServed
	case ErrorKindServiceUnavailable:
		return MessageServiceUnavailable
	case ErrorKindOther:
	}
	return messageOtherPrefix + msg
}
