package ske_test

import (
	"testing"

	"github.com/tessel-crypto/spongesuite/internal/testdata"
	"github.com/tessel-crypto/spongesuite/schemes/basic/ske"
)

func BenchmarkEncrypt(b *testing.B) {
	passphrase := []byte("bench passphrase")
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			message := make([]byte, size.N)
			rand := testdata.New("ske bench").Reader()
			b.SetBytes(int64(size.N))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := ske.Encrypt(rand, passphrase, message); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecrypt(b *testing.B) {
	passphrase := []byte("bench passphrase")
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			message := make([]byte, size.N)
			ct, err := ske.Encrypt(testdata.New("ske bench seed").Reader(), passphrase, message)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(size.N))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := ske.Decrypt(passphrase, ct); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
