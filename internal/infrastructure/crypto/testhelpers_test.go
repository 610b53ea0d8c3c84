package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/youmark/pkcs8"

	"github.com/turtacn/certgen/internal/domain/models"
)

// testDN is the subject used across the end-to-end tests.
var testDN = models.DistinguishedName{
	CommonName:         "test.example.com",
	Organization:       "Acme",
	OrganizationalUnit: "Eng",
	Country:            "US",
	State:              "CA",
	Locality:           "SF",
	Email:              "a@example.com",
}

type certOptions struct {
	serial    *big.Int
	notBefore time.Time
	notAfter  time.Time
	subject   pkix.Name
	issuer    *pkix.Name
}

func defaultCertOptions() certOptions {
	return certOptions{
		serial:    big.NewInt(1),
		notBefore: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		notAfter:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		subject: pkix.Name{
			CommonName:         "test.example.com",
			Organization:       []string{"Acme"},
			OrganizationalUnit: []string{"Eng"},
			Country:            []string{"US"},
			Province:           []string{"CA"},
			Locality:           []string{"SF"},
		},
	}
}

// newRSAKey returns a throwaway RSA key. 1024 bits keeps the tests fast.
func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	return key
}

// issueCertificate self-signs (or issuer-signs when opts.issuer is set) a
// certificate for pub with signer.
func issueCertificate(t *testing.T, pub crypto.PublicKey, signer crypto.Signer, opts certOptions) *x509.Certificate {
	t.Helper()

	template := &x509.Certificate{
		SerialNumber: opts.serial,
		Subject:      opts.subject,
		NotBefore:    opts.notBefore,
		NotAfter:     opts.notAfter,
	}
	parent := template
	if opts.issuer != nil {
		parent = &x509.Certificate{
			SerialNumber: big.NewInt(99),
			Subject:      *opts.issuer,
			NotBefore:    opts.notBefore,
			NotAfter:     opts.notAfter,
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, parent, pub, signer)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert
}

func writePEM(t *testing.T, dir, name, blockType string, der []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeCertificate(t *testing.T, dir string, cert *x509.Certificate) string {
	t.Helper()
	return writePEM(t, dir, "cert.pem", "CERTIFICATE", cert.Raw)
}

func writePKCS1Key(t *testing.T, dir string, key *rsa.PrivateKey) string {
	t.Helper()
	return writePEM(t, dir, "key.pem", "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key))
}

func writePKCS8Key(t *testing.T, dir string, key interface{}) string {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return writePEM(t, dir, "key.pem", "PRIVATE KEY", der)
}

func writeEncryptedPKCS8Key(t *testing.T, dir string, key interface{}, password string) string {
	t.Helper()
	der, err := pkcs8.ConvertPrivateKeyToPKCS8(key, []byte(password))
	require.NoError(t, err)
	return writePEM(t, dir, "key.enc.pem", "ENCRYPTED PRIVATE KEY", der)
}
