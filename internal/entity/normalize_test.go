package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeDomain(""))
	assert.Equal(t, "", NormalizeDomain("   "))
}

func TestNormalizeDomain_StripsScheme(t *testing.T) {
	assert.Equal(t, "barclays.com", NormalizeDomain("https://barclays.com"))
	assert.Equal(t, "barclays.com", NormalizeDomain("http://barclays.com"))
}

func TestNormalizeDomain_StripsWWW(t *testing.T) {
	assert.Equal(t, "usbank.com", NormalizeDomain("www.usbank.com"))
	assert.Equal(t, "usbank.com", NormalizeDomain("https://www.usbank.com"))
}

func TestNormalizeDomain_StripsPathAndQuery(t *testing.T) {
	assert.Equal(t, "pfm.com", NormalizeDomain("https://pfm.com/about/team"))
	assert.Equal(t, "pfm.com", NormalizeDomain("pfm.com/"))
	assert.Equal(t, "pfm.com", NormalizeDomain("pfm.com?utm=x"))
	assert.Equal(t, "pfm.com", NormalizeDomain("pfm.com#contact"))
}

func TestNormalizeDomain_Lowercases(t *testing.T) {
	assert.Equal(t, "hjsims.com", NormalizeDomain("HTTPS://WWW.HJSims.com/Home"))
}

func TestNormalizeDomain_BareDomainUnchanged(t *testing.T) {
	assert.Equal(t, "53.com", NormalizeDomain("53.com"))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com"))
	assert.True(t, IsURL("https://example.com"))
	assert.True(t, IsURL("www.example.com"))
	assert.False(t, IsURL("example.com"))
	assert.False(t, IsURL("Piper Sandler"))
}

func TestGuessNameFromDomain(t *testing.T) {
	assert.Equal(t, "Loop Capital", GuessNameFromDomain("https://www.loop-capital.com/about"))
	assert.Equal(t, "First Tryon", GuessNameFromDomain("first_tryon.org"))
	assert.Equal(t, "", GuessNameFromDomain(""))
}

func TestGuessNameFromDomain_TakesFirstLabel(t *testing.T) {
	assert.Equal(t, "Aafaf", GuessNameFromDomain("aafaf.pr.gov"))
}
