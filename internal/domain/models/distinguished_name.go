package models

import (
	"crypto/x509/pkix"
	"encoding/asn1"

	"github.com/turtacn/certgen/pkg/constants"
)

// DistinguishedName is the identity placed in the subject of a generated CSR.
// All seven fields are required. Only Email is restricted further, to ASCII.
// DistinguishedName 是生成的 CSR 主题中的身份信息。
// 七个字段都是必填的，其中 Email 只能包含 ASCII 字符。
type DistinguishedName struct {
	// CommonName (CN), e.g. "test.example.com".
	// CommonName (CN)，例如 "test.example.com"。
	CommonName string `json:"common_name" validate:"required"`
	// Organization (O).
	// Organization (O)。
	Organization string `json:"organization" validate:"required"`
	// OrganizationalUnit (OU).
	// OrganizationalUnit (OU)。
	OrganizationalUnit string `json:"organizational_unit" validate:"required"`
	// Country (C) is expected to be a two-letter code; this is left to the CA.
	// Country (C) 应为两位字母代码，由 CA 负责校验。
	Country string `json:"country" validate:"required"`
	// State (ST).
	// State (ST)。
	State string `json:"state" validate:"required"`
	// Locality (L).
	// Locality (L)。
	Locality string `json:"locality" validate:"required"`
	// Email is encoded as the PKCS#9 emailAddress attribute, an IA5String,
	// so only ASCII is accepted.
	// Email 编码为 PKCS#9 emailAddress 属性（IA5String），仅接受 ASCII 字符。
	Email string `json:"email" validate:"required,ascii"`
}

// RDNSequence returns the subject with one attribute per RDN in the order
// CN, O, OU, C, ST, L, emailAddress. pkix.Name.ToRDNSequence cannot be used
// because it emits C first and has no emailAddress field.
// RDNSequence 按 CN、O、OU、C、ST、L、emailAddress 的顺序返回主题。
func (dn DistinguishedName) RDNSequence() pkix.RDNSequence {
	attr := func(oid asn1.ObjectIdentifier, value interface{}) pkix.RelativeDistinguishedNameSET {
		return pkix.RelativeDistinguishedNameSET{{Type: oid, Value: value}}
	}

	return pkix.RDNSequence{
		attr(constants.OIDCommonName, dn.CommonName),
		attr(constants.OIDOrganization, dn.Organization),
		attr(constants.OIDOrganizationalUnit, dn.OrganizationalUnit),
		attr(constants.OIDCountry, dn.Country),
		attr(constants.OIDState, dn.State),
		attr(constants.OIDLocality, dn.Locality),
		// emailAddress is an IA5String (RFC 2985).
		attr(constants.OIDEmailAddress, asn1.RawValue{
			Class: asn1.ClassUniversal,
			Tag:   asn1.TagIA5String,
			Bytes: []byte(dn.Email),
		}),
	}
}
