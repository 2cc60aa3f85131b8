package services

import (
	"strings"
	"testing"

	"kartvizit.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVCardFullCard(t *testing.T) {
	svc := NewVCardService()
	card := &models.Card{
		Detail: models.CardDetail{
			Prefix:            "Dr.",
			FirstName:         "Ayşe",
			LastName:          "Yılmaz",
			Suffix:            "PhD",
			Title:             "Diş Hekimi",
			Company:           "Yılmaz Klinik",
			Bio:               "20 yıllık tecrübe",
			Email:             "ayse@example.com",
			PhoneNumber:       "+90 555 000 11 22",
			Website:           "https://ayse.example.com",
			Address:           "Kadıköy, İstanbul",
			ProfilePictureURL: "https://cdn.example.com/ayse.jpg",
		},
	}

	out := string(svc.BuildVCard(card))
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")

	require.Equal(t, "BEGIN:VCARD", lines[0])
	require.Equal(t, "VERSION:3.0", lines[1])
	assert.Equal(t, "END:VCARD", lines[len(lines)-1])

	assert.Contains(t, lines, "N:Yılmaz;Ayşe;;Dr.;PhD")
	assert.Contains(t, lines, "FN:Dr. Ayşe Yılmaz PhD")
	assert.Contains(t, lines, "ORG:Yılmaz Klinik")
	assert.Contains(t, lines, "TITLE:Diş Hekimi")
	assert.Contains(t, lines, "TEL;TYPE=CELL:+90 555 000 11 22")
	assert.Contains(t, lines, "EMAIL;TYPE=INTERNET:ayse@example.com")
	assert.Contains(t, lines, "URL:https://ayse.example.com")
	assert.Contains(t, lines, "ADR;TYPE=WORK:;;Kadıköy\\, İstanbul;;;")
	assert.Contains(t, lines, "NOTE:20 yıllık tecrübe")
	assert.Contains(t, lines, "PHOTO;VALUE=URI:https://cdn.example.com/ayse.jpg")
}

func TestBuildVCardEmptyFieldsOmitted(t *testing.T) {
	svc := NewVCardService()
	card := &models.Card{
		Detail: models.CardDetail{
			FirstName: "Mehmet",
			LastName:  "Demir",
		},
	}

	out := string(svc.BuildVCard(card))

	assert.Contains(t, out, "N:Demir;Mehmet;;;\r\n")
	assert.Contains(t, out, "FN:Mehmet Demir\r\n")
	assert.NotContains(t, out, "ORG")
	assert.NotContains(t, out, "TEL")
	assert.NotContains(t, out, "EMAIL")
	assert.NotContains(t, out, "ADR")
	assert.NotContains(t, out, "NOTE")
	assert.NotContains(t, out, "PHOTO")
}

func TestBuildVCardEscapesSpecialCharacters(t *testing.T) {
	svc := NewVCardService()
	card := &models.Card{
		Detail: models.CardDetail{
			FirstName: "Ali",
			LastName:  "Kaya",
			Company:   "Kaya; Ortakları, A.Ş.",
			Bio:       "ilk satır\nikinci satır",
		},
	}

	out := string(svc.BuildVCard(card))

	assert.Contains(t, out, "ORG:Kaya\\; Ortakları\\, A.Ş.\r\n")
	assert.Contains(t, out, "NOTE:ilk satır\\nikinci satır\r\n")
}

func TestBuildVCardNilCard(t *testing.T) {
	svc := NewVCardService()
	assert.Nil(t, svc.BuildVCard(nil))
}

func TestVCardFileName(t *testing.T) {
	svc := NewVCardService()

	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"isim ve soyisim", "Ayşe", "Yılmaz", "ayşe-yılmaz.vcf"},
		{"sadece isim", "Ayşe", "", "ayşe.vcf"},
		{"boş kart", "", "", "kartvizit.vcf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &models.Card{Detail: models.CardDetail{FirstName: tt.firstName, LastName: tt.lastName}}
			assert.Equal(t, tt.want, svc.FileName(card))
		})
	}

	assert.Equal(t, "kartvizit.vcf", svc.FileName(nil))
}
