package validators

import (
	"github.com/go-playground/validator/v10"
)

// Algorithm names understood by BitLengthValidation.
const (
	AlgorithmRSA     = "RSA"
	AlgorithmElGamal = "ElGamal"
)

// Bit length bounds per algorithm. RSA lengths are per prime factor, so the
// modulus is twice as long.
const (
	MinRSABitLength     = 16
	MaxRSABitLength     = 4096
	MinElGamalBitLength = 16
	MaxElGamalBitLength = 4096
)

// BitLengthTag is the struct tag name BitLengthValidation is registered under.
const BitLengthTag = "bitlength"

// BitLengthValidation validates the bit length based on the sibling Algorithm field (RSA or ElGamal).
func BitLengthValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	return ValidBitLength(algorithm, fl.Field().Int())
}

// ValidBitLength reports whether bitLength lies within the bounds of algorithm.
// Unknown algorithms have no valid length.
func ValidBitLength(algorithm string, bitLength int64) bool {
	switch algorithm {
	case AlgorithmRSA:
		return bitLength >= MinRSABitLength && bitLength <= MaxRSABitLength
	case AlgorithmElGamal:
		return bitLength >= MinElGamalBitLength && bitLength <= MaxElGamalBitLength
	default:
		return false
	}
}

// New returns a validator with the custom rules of this package registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(BitLengthTag, BitLengthValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
