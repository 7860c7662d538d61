package images

import (
	"testing"

	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalName(t *testing.T) {
	fields, ok := ParseName(
		models.OwnerCanonical,
		"ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223",
	)
	require.True(t, ok)

	assert.Equal(t, "focal", fields.Value(models.FieldSuite))
	assert.Equal(t, "20.04", fields.Value(models.FieldReleaseVersion))
	assert.Equal(t, "hvm-ssd", fields.Value(models.FieldVirtStorage))
	assert.Equal(t, "amd64", fields.Value(models.FieldArch))
	assert.Equal(t, "20210223", fields.Value(models.FieldSerial))

	_, present := fields.Get(models.FieldUploadType)
	assert.False(t, present, "upload_type did not participate and must be absent")
	_, present = fields.Get(models.FieldImageTypePath)
	assert.False(t, present)
	_, present = fields.Get(models.FieldCustom)
	assert.False(t, present)
}

func TestParseCanonicalNameVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{
			name: "image type path and point serial",
			in:   "ubuntu/images-testing/hvm-ssd/ubuntu-jammy-daily-arm64-server-20220101.1",
			want: map[string]string{
				models.FieldImageTypePath: "testing",
				models.FieldVirtStorage:   "hvm-ssd",
				models.FieldSuite:         "jammy",
				models.FieldUploadType:    "daily",
				models.FieldArch:          "arm64",
				models.FieldSerial:        "20220101.1",
			},
		},
		{
			name: "no virt storage segment",
			in:   "ubuntu/images/ubuntu-bionic-18.04-amd64-server-20210615",
			want: map[string]string{
				models.FieldSuite:          "bionic",
				models.FieldReleaseVersion: "18.04",
				models.FieldArch:           "amd64",
				models.FieldSerial:         "20210615",
			},
		},
		{
			name: "custom suffix",
			in:   "ubuntu/images/hvm-ssd/ubuntu-xenial-16.04-arm64-server-20190212-eks",
			want: map[string]string{
				models.FieldVirtStorage:    "hvm-ssd",
				models.FieldSuite:          "xenial",
				models.FieldReleaseVersion: "16.04",
				models.FieldArch:           "arm64",
				models.FieldSerial:         "20190212",
				models.FieldCustom:         "eks",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, ok := ParseName(models.OwnerCanonical, tt.in)
			require.True(t, ok)
			assert.Equal(t, models.ParsedFields(tt.want), fields)
		})
	}
}

func TestParseUbuntuProName(t *testing.T) {
	fields, ok := ParseName(
		models.OwnerAWSUbuntuPro,
		"trusty-ua-tools-20191128-d984c693-feaa-4be0-bc34-2099410bc9cc-ami-075ab031d5a3404c6.4",
	)
	require.True(t, ok)

	assert.Equal(t, "20191128", fields.Value(models.FieldSerial))
	assert.Equal(t, "ami-075ab031d5a3404c6", fields.Value(models.FieldSourceAMI))
	_, present := fields.Get(models.FieldReleaseVersion)
	assert.False(t, present)
}

func TestParseDeepLearningName(t *testing.T) {
	fields, ok := ParseName(
		models.OwnerAWSDeepLearning,
		"ubuntu-xenial-16.04-amd64-server-20190212-SQL_2017_Standard-2019.04.02",
	)
	require.True(t, ok)

	assert.Equal(t, "xenial", fields.Value(models.FieldSuite))
	assert.Equal(t, "16.04", fields.Value(models.FieldReleaseVersion))
	assert.Equal(t, "amd64", fields.Value(models.FieldArch))
	assert.Equal(t, "20190212", fields.Value(models.FieldSerial))
}

func TestParseNameNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		owner models.Owner
		in    string
	}{
		{"canonical non ubuntu name", models.OwnerCanonical, "amzn2-ami-hvm-2.0.20210219.0-x86_64-gp2"},
		{"canonical not anchored", models.OwnerCanonical, "copy of ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223"},
		{"deep learning without trailing dash", models.OwnerAWSDeepLearning, "ubuntu-xenial-16.04-amd64-server-20190212"},
		{"ubuntu pro without source ami", models.OwnerAWSUbuntuPro, "ubuntu-pro-20210615-something"},
		{"unknown owner", models.OwnerUnknown, "ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223"},
		{"empty name", models.OwnerCanonical, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, ok := ParseName(tt.owner, tt.in)
			assert.False(t, ok)
			assert.Nil(t, fields)
		})
	}
}

func TestParseNameHasNoFallbackGrammar(t *testing.T) {
	canonical := "ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223"
	_, ok := ParseName(models.OwnerAWSDeepLearning, canonical)
	assert.False(t, ok, "a Canonical name must not parse under the deep learning grammar")

	deepLearning := "ubuntu-xenial-16.04-amd64-server-20190212-SQL_2017_Standard-2019.04.02"
	_, ok = ParseName(models.OwnerCanonical, deepLearning)
	assert.False(t, ok, "a deep learning name must not parse under the Canonical grammar")
}
