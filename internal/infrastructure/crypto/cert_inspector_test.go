package crypto

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
)

func TestCertificateInspector_ParseCertificate(t *testing.T) {
	dir := t.TempDir()
	key := newRSAKey(t)

	serial, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	opts := defaultCertOptions()
	opts.serial = serial
	opts.subject.ExtraNames = []pkix.AttributeTypeAndValue{
		{Type: constants.OIDEmailAddress, Value: "a@example.com"},
	}
	opts.issuer = &pkix.Name{
		CommonName:         "Acme Issuing CA",
		Organization:       []string{"Acme"},
		OrganizationalUnit: []string{"PKI"},
		Country:            []string{"US"},
	}
	cert := issueCertificate(t, &key.PublicKey, key, opts)

	info, err := NewCertificateInspector(nil).ParseCertificate(context.Background(), writeCertificate(t, dir, cert))
	require.NoError(t, err)

	assert.Equal(t, models.SubjectInfo{
		CommonName:         "test.example.com",
		Organization:       "Acme",
		OrganizationalUnit: "Eng",
		Country:            "US",
		State:              "CA",
		Locality:           "SF",
		Email:              "a@example.com",
	}, info.Subject)
	assert.Equal(t, models.IssuerInfo{
		CommonName:         "Acme Issuing CA",
		Organization:       "Acme",
		OrganizationalUnit: "PKI",
		Country:            "US",
	}, info.Issuer)
	assert.Equal(t, "123456789012345678901234567890", info.SerialNumber)
	assert.Equal(t, "20240101000000Z", info.NotBefore)
	assert.Equal(t, "20250101000000Z", info.NotAfter)
	assert.Equal(t, 2, info.Version)
	assert.Equal(t, "sha256WithRSAEncryption", info.SignatureAlgorithm)
}

func TestCertificateInspector_MissingAttributesAreEmpty(t *testing.T) {
	dir := t.TempDir()
	key := newRSAKey(t)

	opts := defaultCertOptions()
	opts.subject = pkix.Name{CommonName: "only-cn"}
	cert := issueCertificate(t, &key.PublicKey, key, opts)

	info, err := NewCertificateInspector(nil).ParseCertificate(context.Background(), writeCertificate(t, dir, cert))
	require.NoError(t, err)

	assert.Equal(t, models.SubjectInfo{CommonName: "only-cn"}, info.Subject)
	assert.Equal(t, models.IssuerInfo{CommonName: "only-cn"}, info.Issuer)
}

func TestCertificateInspector_NegativeSerial(t *testing.T) {
	key := newRSAKey(t)
	opts := defaultCertOptions()
	opts.serial = big.NewInt(0x1234)
	cert := issueCertificate(t, &key.PublicKey, key, opts)

	// x509.CreateCertificate refuses negative serials, so flip the encoded
	// INTEGER 0x1234 to 0xEDCC (-4660). The signature is not checked on parse.
	der := bytes.Replace(cert.Raw, []byte{0x02, 0x02, 0x12, 0x34}, []byte{0x02, 0x02, 0xED, 0xCC}, 1)
	require.NotEqual(t, cert.Raw, der)

	path := writePEM(t, t.TempDir(), "negative.pem", "CERTIFICATE", der)
	info, err := NewCertificateInspector(nil).ParseCertificate(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "-4660", info.SerialNumber)
}

func TestCertificateInspector_ValidityEncodings(t *testing.T) {
	tests := []struct {
		name          string
		notBefore     time.Time
		notAfter      time.Time
		wantNotBefore string
		wantNotAfter  string
	}{
		{
			name:          "utc time in the 2000s",
			notBefore:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			notAfter:      time.Date(2049, 12, 31, 23, 59, 59, 0, time.UTC),
			wantNotBefore: "20240101000000Z",
			wantNotAfter:  "20491231235959Z",
		},
		{
			name:          "utc time in the 1900s",
			notBefore:     time.Date(1999, 6, 15, 12, 30, 0, 0, time.UTC),
			notAfter:      time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
			wantNotBefore: "19990615123000Z",
			wantNotAfter:  "20010101000000Z",
		},
		{
			name:          "generalized time after 2049",
			notBefore:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			notAfter:      time.Date(2051, 1, 1, 0, 0, 0, 0, time.UTC),
			wantNotBefore: "20240101000000Z",
			wantNotAfter:  "20510101000000Z",
		},
	}

	key := newRSAKey(t)
	inspector := NewCertificateInspector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultCertOptions()
			opts.notBefore = tt.notBefore
			opts.notAfter = tt.notAfter
			cert := issueCertificate(t, &key.PublicKey, key, opts)

			info, err := inspector.ParseCertificate(context.Background(), writeCertificate(t, t.TempDir(), cert))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNotBefore, info.NotBefore)
			assert.Equal(t, tt.wantNotAfter, info.NotAfter)
		})
	}
}

func TestCertificateInspector_SignatureAlgorithms(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	edPub, edKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	inspector := NewCertificateInspector(nil)

	t.Run("ecdsa", func(t *testing.T) {
		cert := issueCertificate(t, &ecKey.PublicKey, ecKey, defaultCertOptions())
		info, err := inspector.ParseCertificate(context.Background(), writeCertificate(t, t.TempDir(), cert))
		require.NoError(t, err)
		assert.Equal(t, "ecdsa-with-SHA256", info.SignatureAlgorithm)
	})

	t.Run("ed25519", func(t *testing.T) {
		cert := issueCertificate(t, edPub, edKey, defaultCertOptions())
		info, err := inspector.ParseCertificate(context.Background(), writeCertificate(t, t.TempDir(), cert))
		require.NoError(t, err)
		assert.Equal(t, "ED25519", info.SignatureAlgorithm)
	})
}

func TestSignatureAlgorithmName(t *testing.T) {
	tests := []struct {
		oid  asn1.ObjectIdentifier
		want string
	}{
		{asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}, "sha1WithRSAEncryption"},
		{asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}, "sha512WithRSAEncryption"},
		{asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}, "rsassaPss"},
		{asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}, "ecdsa-with-SHA384"},
		{asn1.ObjectIdentifier{1, 2, 3, 4}, "1.2.3.4"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, signatureAlgorithmName(tt.oid))
		})
	}
}

func TestCertificateInspector_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) string
	}{
		{
			name:  "empty path",
			setup: func(*testing.T, string) string { return "" },
		},
		{
			name:  "missing file",
			setup: func(_ *testing.T, dir string) string { return filepath.Join(dir, "absent.pem") },
		},
		{
			name: "not PEM",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "garbage.pem")
				require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
				return path
			},
		},
		{
			name: "wrong block type",
			setup: func(t *testing.T, dir string) string {
				return writePEM(t, dir, "csr.pem", "CERTIFICATE REQUEST", []byte{0x30, 0x00})
			},
		},
		{
			name: "truncated DER",
			setup: func(t *testing.T, dir string) string {
				return writePEM(t, dir, "cert.pem", "CERTIFICATE", []byte{0x30, 0x82, 0x01, 0x00, 0x30})
			},
		},
	}

	inspector := NewCertificateInspector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := inspector.ParseCertificate(context.Background(), tt.setup(t, t.TempDir()))
			require.Error(t, err)
			assert.Nil(t, info)
			assert.True(t, errors.HasCode(err, constants.ErrCodeCertificateParseFailed), "unexpected error: %v", err)
		})
	}
}
