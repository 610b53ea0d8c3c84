package crypto

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ================================================================================
// Raw Certificate Fields
// ================================================================================
//
// crypto/x509 normalizes validity to time.Time and maps signature algorithms
// to its own enum. The helpers below read the encoded values instead.

// rawValidity returns notBefore and notAfter from a DER TBSCertificate in
// GeneralizedTime form (YYYYMMDDHHMMSSZ).
func rawValidity(tbsDER []byte) (notBefore, notAfter string, err error) {
	input := cryptobyte.String(tbsDER)

	var tbs cryptobyte.String
	if !input.ReadASN1(&tbs, cbasn1.SEQUENCE) {
		return "", "", errors.New("malformed TBSCertificate")
	}
	if !tbs.SkipOptionalASN1(cbasn1.Tag(0).Constructed().ContextSpecific()) {
		return "", "", errors.New("malformed version")
	}
	if !tbs.SkipASN1(cbasn1.INTEGER) {
		return "", "", errors.New("malformed serial number")
	}
	if !tbs.SkipASN1(cbasn1.SEQUENCE) {
		return "", "", errors.New("malformed signature algorithm")
	}
	if !tbs.SkipASN1(cbasn1.SEQUENCE) {
		return "", "", errors.New("malformed issuer")
	}

	var validity cryptobyte.String
	if !tbs.ReadASN1(&validity, cbasn1.SEQUENCE) {
		return "", "", errors.New("malformed validity")
	}
	if notBefore, err = readRawTime(&validity); err != nil {
		return "", "", fmt.Errorf("notBefore: %w", err)
	}
	if notAfter, err = readRawTime(&validity); err != nil {
		return "", "", fmt.Errorf("notAfter: %w", err)
	}
	return notBefore, notAfter, nil
}

// readRawTime consumes one UTCTime or GeneralizedTime. UTCTime years are
// widened per RFC 5280: YY >= 50 is 19YY, otherwise 20YY.
func readRawTime(s *cryptobyte.String) (string, error) {
	var (
		content cryptobyte.String
		tag     cbasn1.Tag
	)
	if !s.ReadAnyASN1(&content, &tag) {
		return "", errors.New("malformed time")
	}

	switch tag {
	case cbasn1.GeneralizedTime:
		return string(content), nil
	case cbasn1.UTCTime:
		v := string(content)
		if len(v) < 2 {
			return "", fmt.Errorf("malformed UTCTime %q", v)
		}
		yy, err := strconv.Atoi(v[:2])
		if err != nil {
			return "", fmt.Errorf("malformed UTCTime %q", v)
		}
		if yy >= 50 {
			return "19" + v, nil
		}
		return "20" + v, nil
	default:
		return "", fmt.Errorf("unexpected time tag %d", tag)
	}
}

// rawSignatureOID returns the outer signatureAlgorithm OID of a DER certificate.
func rawSignatureOID(certDER []byte) (asn1.ObjectIdentifier, error) {
	input := cryptobyte.String(certDER)

	var cert cryptobyte.String
	if !input.ReadASN1(&cert, cbasn1.SEQUENCE) {
		return nil, errors.New("malformed certificate")
	}
	if !cert.SkipASN1(cbasn1.SEQUENCE) {
		return nil, errors.New("malformed TBSCertificate")
	}

	var algID cryptobyte.String
	if !cert.ReadASN1(&algID, cbasn1.SEQUENCE) {
		return nil, errors.New("malformed signature algorithm")
	}

	var oid asn1.ObjectIdentifier
	if !algID.ReadASN1ObjectIdentifier(&oid) {
		return nil, errors.New("malformed signature algorithm OID")
	}
	return oid, nil
}

// ================================================================================
// Signature Algorithm Names
// ================================================================================

// signatureAlgorithmNames maps OIDs to their OpenSSL long names.
var signatureAlgorithmNames = map[string]string{
	"1.2.840.113549.1.1.4":   "md5WithRSAEncryption",
	"1.2.840.113549.1.1.5":   "sha1WithRSAEncryption",
	"1.2.840.113549.1.1.14":  "sha224WithRSAEncryption",
	"1.2.840.113549.1.1.11":  "sha256WithRSAEncryption",
	"1.2.840.113549.1.1.12":  "sha384WithRSAEncryption",
	"1.2.840.113549.1.1.13":  "sha512WithRSAEncryption",
	"1.2.840.113549.1.1.10":  "rsassaPss",
	"1.3.14.3.2.29":          "sha1WithRSA",
	"1.2.840.10040.4.3":      "dsaWithSHA1",
	"2.16.840.1.101.3.4.3.1": "dsa_with_SHA224",
	"2.16.840.1.101.3.4.3.2": "dsa_with_SHA256",
	"1.2.840.10045.4.1":      "ecdsa-with-SHA1",
	"1.2.840.10045.4.3.1":    "ecdsa-with-SHA224",
	"1.2.840.10045.4.3.2":    "ecdsa-with-SHA256",
	"1.2.840.10045.4.3.3":    "ecdsa-with-SHA384",
	"1.2.840.10045.4.3.4":    "ecdsa-with-SHA512",
	"1.3.101.112":            "ED25519",
	"1.3.101.113":            "ED448",
}

// signatureAlgorithmName returns the OpenSSL long name for oid, or the dotted
// OID when it is not known.
func signatureAlgorithmName(oid asn1.ObjectIdentifier) string {
	dotted := oid.String()
	if name, ok := signatureAlgorithmNames[dotted]; ok {
		return name
	}
	return dotted
}
