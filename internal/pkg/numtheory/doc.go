// Package numtheory provides the modular-arithmetic building blocks shared by the
// classical and public-key ciphers: the extended Euclidean algorithm, modular
// inverses for machine integers and big integers, probable-prime generation and
// uniform random draws from an injected randomness source.
//
// Big-integer arithmetic itself (multiplication, modular exponentiation,
// Miller-Rabin/Baillie-PSW testing) is delegated to math/big.
package numtheory
