package models

import "github.com/turtacn/certgen/pkg/constants"

// CSRRequest describes a key pair and CSR to generate.
// CSRRequest 描述要生成的密钥对和 CSR。
type CSRRequest struct {
	Subject   DistinguishedName
	KeyPath   string              `validate:"required"`
	CSRPath   string              `validate:"required"`
	KeyFormat constants.KeyFormat `validate:"omitempty,oneof=pkcs8 rsa"`
}

// CSRResult reports where the generated artifacts were written.
// CSRResult 报告生成的文件路径。
type CSRResult struct {
	KeyPath string `json:"key_path"`
	CSRPath string `json:"csr_path"`
}

// P12Request describes a PKCS#12 archive to assemble.
// P12Request 描述要组装的 PKCS#12 文件。
type P12Request struct {
	CertPath string `validate:"required"`
	KeyPath  string `validate:"required"`
	P12Path  string `validate:"required"`
	// Password protects the archive; empty means an unencrypted archive.
	// Password 保护归档文件；为空表示不加密。
	Password string
	// KeyPassword decrypts an "ENCRYPTED PRIVATE KEY" input.
	// KeyPassword 用于解密加密的 PKCS#8 私钥输入。
	KeyPassword string
	// Legacy selects 3DES with a SHA-1 MAC for older importers.
	// Legacy 为旧版导入工具选择 3DES 与 SHA-1 MAC。
	Legacy bool
}

// P12Result reports where the archive was written.
// P12Result 报告归档文件的写入路径。
type P12Result struct {
	P12Path string `json:"p12_path"`
}
