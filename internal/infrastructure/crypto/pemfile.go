package crypto

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/youmark/pkcs8"

	"github.com/turtacn/certgen/pkg/constants"
)

// ================================================================================
// PEM Decoding
// ================================================================================

// readPEMBlock reads path and returns its first PEM block.
func readPEMBlock(path string) (*pem.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM data found in %s", path)
	}
	return block, nil
}

// readCertificate decodes the first PEM CERTIFICATE block in path.
func readCertificate(path string) (*x509.Certificate, error) {
	block, err := readPEMBlock(path)
	if err != nil {
		return nil, err
	}
	if block.Type != constants.PEMTypeCertificate {
		return nil, fmt.Errorf("unexpected PEM block type %q in %s, want %q", block.Type, path, constants.PEMTypeCertificate)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return cert, nil
}

// readPrivateKey decodes the first PEM private key block in path.
// keyPassword is only consulted for ENCRYPTED PRIVATE KEY blocks.
func readPrivateKey(path, keyPassword string) (crypto.PrivateKey, error) {
	block, err := readPEMBlock(path)
	if err != nil {
		return nil, err
	}
	if _, encrypted := block.Headers["Proc-Type"]; encrypted {
		return nil, errors.New("legacy encrypted PEM keys are not supported, convert to PKCS#8")
	}

	var key interface{}
	switch block.Type {
	case constants.PEMTypeRSAPrivateKey:
		key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	case constants.PEMTypePrivateKey:
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes)
	case constants.PEMTypeECPrivateKey:
		key, err = x509.ParseECPrivateKey(block.Bytes)
	case constants.PEMTypeEncryptedPrivateKey:
		if keyPassword == "" {
			return nil, errors.New("private key is encrypted but no key password was given")
		}
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(keyPassword))
	default:
		return nil, fmt.Errorf("unsupported private key PEM block type %q", block.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return key, nil
}

// ================================================================================
// PEM Encoding
// ================================================================================

// encodePrivateKey renders key as PEM in the requested format.
func encodePrivateKey(key *rsa.PrivateKey, format constants.KeyFormat) ([]byte, error) {
	switch format {
	case constants.KeyFormatRSA:
		return pem.EncodeToMemory(&pem.Block{
			Type:  constants.PEMTypeRSAPrivateKey,
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		}), nil
	case constants.KeyFormatPKCS8, "":
		der, err := pkcs8.ConvertPrivateKeyToPKCS8(key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal PKCS#8 key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{
			Type:  constants.PEMTypePrivateKey,
			Bytes: der,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported key format %q", format)
	}
}

// ================================================================================
// File Output
// ================================================================================

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so path holds either the old content or all of data.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}
