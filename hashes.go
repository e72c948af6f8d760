package arion

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// Hash1 through Hash4 are fixed arity wrappers over the default width 5
// sponge.
func Hash1(domain fr.Element, v fr.Element) (fr.Element, error) {
	return Hash(domain, v)
}

func Hash2(domain fr.Element, a, b fr.Element) (fr.Element, error) {
	return Hash(domain, a, b)
}

func Hash3(domain fr.Element, a, b, c fr.Element) (fr.Element, error) {
	return Hash(domain, a, b, c)
}

func Hash4(domain fr.Element, a, b, c, d fr.Element) (fr.Element, error) {
	return Hash(domain, a, b, c, d)
}
