package models

// SubjectInfo holds the subject attributes reported for a certificate.
// Attributes the certificate does not carry are empty strings.
// SubjectInfo 保存证书主题属性，缺失的属性为空字符串。
type SubjectInfo struct {
	CommonName         string `json:"common_name"`
	Organization       string `json:"organization"`
	OrganizationalUnit string `json:"organizational_unit"`
	Country            string `json:"country"`
	State              string `json:"state"`
	Locality           string `json:"locality"`
	Email              string `json:"email"`
}

// IssuerInfo holds the issuer attributes reported for a certificate.
// IssuerInfo 保存证书颁发者属性。
type IssuerInfo struct {
	CommonName         string `json:"common_name"`
	Organization       string `json:"organization"`
	OrganizationalUnit string `json:"organizational_unit"`
	Country            string `json:"country"`
}

// CertificateInfo is a flattened snapshot of a certificate's fields.
// CertificateInfo 是证书字段的扁平化快照。
type CertificateInfo struct {
	Subject SubjectInfo `json:"subject"`
	Issuer  IssuerInfo  `json:"issuer"`
	// SerialNumber is the decimal rendering of the serial, any magnitude.
	// SerialNumber 是序列号的十进制表示，支持任意精度。
	SerialNumber string `json:"serial_number"`
	// NotBefore and NotAfter use the ASN.1 GeneralizedTime form YYYYMMDDHHMMSSZ.
	// NotBefore 和 NotAfter 使用 ASN.1 GeneralizedTime 格式。
	NotBefore string `json:"not_before"`
	NotAfter  string `json:"not_after"`
	// Version is the raw X.509 version field: 0 for v1, 2 for v3.
	// Version 是原始 X.509 版本字段：v1 为 0，v3 为 2。
	Version int `json:"version"`
	// SignatureAlgorithm is the OpenSSL long name, e.g. "sha256WithRSAEncryption".
	// SignatureAlgorithm 是 OpenSSL 长名称。
	SignatureAlgorithm string `json:"signature_algorithm"`
}
