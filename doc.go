// Package spongesuite implements the Keccak-f[1600] sponge family used
// throughout this toolkit: SHAKE256, cSHAKE256, and KMACXOF256, as specified
// by FIPS 202 and NIST SP 800-185.
//
// These three functions are the engine other packages in this module build
// on: schemes/basic/ske uses KMACXOF256 for symmetric authenticated
// encryption, and schemes/complex/pke uses it for Ed448-Goldilocks
// public-key authenticated encryption. The underlying permutation and
// sponge live in hazmat/keccak and hazmat/sponge; the SP 800-185 string
// framing lives in hazmat/sp800185. Callers needing only hashing or keyed
// extendable-output MACs should use this package directly rather than
// reaching into hazmat.
package spongesuite
