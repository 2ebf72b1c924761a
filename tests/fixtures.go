package tests

import (
	"log"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prior-it/storefront/core"
)

var Faker = gofakeit.New(rand.Uint64())

// PostalCode returns a random, valid postal code.
func PostalCode() core.PostalCode {
	code, err := core.ParsePostalCode(Faker.DigitN(core.PostalCodeLength))
	Check(err)
	return code
}

// StateCode returns a random federative unit.
func StateCode() core.StateCode {
	options := core.StateOptions()[1:]
	return options[Faker.IntN(len(options))].Code
}

// Address returns a random address for the specified postal code.
func Address(code core.PostalCode) core.Address {
	return core.Address{
		PostalCode:   code,
		Street:       Faker.Street(),
		Neighborhood: Faker.StreetName(),
		Complement:   Faker.RandomString([]string{"", "apto 12", "bloco B", "lado ímpar"}),
		City:         Faker.City(),
		State:        StateCode(),
	}
}

// CSRFToken returns a random token in the format used by the store backend.
func CSRFToken() string {
	return Faker.LetterN(64)
}

func Check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
