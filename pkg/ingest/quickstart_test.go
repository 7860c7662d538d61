package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/bacalhau-project/amiaudit/internal/testdata"
	"github.com/bacalhau-project/amiaudit/internal/testutil"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockImageDescriber struct {
	mock.Mock
}

func (m *MockImageDescriber) DescribeImages(
	ctx context.Context,
	region string,
	imageIDs []string,
) (map[string]models.ImageDetail, error) {
	args := m.Called(ctx, region, imageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.ImageDetail), args.Error(1)
}

func fakeDetails() map[string]models.ImageDetail {
	return map[string]models.ImageDetail{
		testdata.FakeFocalAMD64AMI: {
			ImageID: testdata.FakeFocalAMD64AMI,
			OwnerID: testdata.FakeCanonicalOwnerID,
			Name:    "ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223",
		},
		testdata.FakeFocalARM64AMI: {
			ImageID: testdata.FakeFocalARM64AMI,
			OwnerID: testdata.FakeCanonicalOwnerID,
			Name:    "ubuntu/images/hvm-ssd/ubuntu-focal-20.04-arm64-server-20210223",
		},
		testdata.FakeBionicAMD64AMI: {
			ImageID: testdata.FakeBionicAMD64AMI,
			OwnerID: testdata.FakeCanonicalOwnerID,
			Name:    "ubuntu/images/hvm-ssd/ubuntu-bionic-18.04-amd64-server-20210224",
		},
		testdata.FakeProAMI: {
			ImageID:    testdata.FakeProAMI,
			OwnerAlias: "aws-marketplace",
			OwnerID:    "679593333241",
			Name:       "trusty-ua-tools-20191128-d984c693-feaa-4be0-bc34-2099410bc9cc-ami-075ab031d5a3404c6.4",
		},
	}
}

func TestQuickstartListings(t *testing.T) {
	path, cleanup, err := testutil.WriteStringToTempFileWithExtension(testdata.TestQuickstartList, ".json")
	require.NoError(t, err)
	defer cleanup()

	list, err := ReadQuickstartList(path)
	require.NoError(t, err)
	require.Len(t, list.AMIList, 5)

	listings := list.Listings()
	require.Len(t, listings, 5)

	want := []struct {
		slot int
		arch string
		id   string
	}{
		{2, models.ArchAMD64, testdata.FakeFocalAMD64AMI},
		{2, models.ArchARM64, testdata.FakeFocalARM64AMI},
		{4, models.ArchAMD64, testdata.FakeBionicAMD64AMI},
		{4, models.ArchARM64, "ami-0missing"},
		{5, models.ArchAMD64, testdata.FakeProAMI},
	}
	for i, w := range want {
		assert.Equal(t, w.slot, listings[i].Slot, "listing %d", i)
		assert.Equal(t, w.arch, listings[i].Arch, "listing %d", i)
		assert.Equal(t, w.id, listings[i].ImageID, "listing %d", i)
	}
	assert.Equal(t, "Ubuntu Server 20.04 LTS (HVM), SSD Volume Type", listings[0].Title)
}

func TestReadQuickstartListErrors(t *testing.T) {
	_, err := ReadQuickstartList("/nonexistent/us-east-1-getQuickstartList.json")
	assert.Error(t, err)

	path, cleanup, err := testutil.WriteStringToTempFileWithExtension("{", ".json")
	require.NoError(t, err)
	defer cleanup()
	_, err = ReadQuickstartList(path)
	assert.ErrorContains(t, err, "failed to parse quickstart list")
}

func TestQuickstartGatherer(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFileInDir(t, dir, QuickstartFile("", "us-east-1"), testdata.TestQuickstartList)

	describer := new(MockImageDescriber)
	describer.On("DescribeImages", mock.Anything, "us-east-1", []string{
		testdata.FakeFocalAMD64AMI,
		testdata.FakeFocalARM64AMI,
		testdata.FakeBionicAMD64AMI,
		"ami-0missing",
		testdata.FakeProAMI,
	}).Return(fakeDetails(), nil)

	raws, err := NewQuickstartGatherer(dir, describer).Gather(context.Background(), "us-east-1")
	require.NoError(t, err)
	require.Len(t, raws, 4, "the AMI EC2 does not know about is skipped")

	assert.Equal(t, testdata.FakeCanonicalOwnerID, raws[0].OwnerAlias)
	assert.Equal(t, QuickstartType, raws[0].Type)
	assert.Equal(t, 2, raws[0].QuickstartSlot)
	assert.Equal(t, models.ArchARM64, raws[1].ListingArch)
	assert.Equal(t, "aws-marketplace", raws[3].OwnerAlias, "the owner alias wins over the account id")
	assert.Equal(t, 5, raws[3].QuickstartSlot)
	describer.AssertExpectations(t)
}

func TestQuickstartGathererErrors(t *testing.T) {
	dir := t.TempDir()

	describer := new(MockImageDescriber)
	_, err := NewQuickstartGatherer(dir, describer).Gather(context.Background(), "eu-west-1")
	assert.Error(t, err, "a region without a captured list fails")

	testutil.WriteFileInDir(t, dir, QuickstartFile("", "eu-west-1"), testdata.TestQuickstartList)
	describeErr := errors.New("UnauthorizedOperation")
	describer.On("DescribeImages", mock.Anything, "eu-west-1", mock.Anything).Return(nil, describeErr)

	_, err = NewQuickstartGatherer(dir, describer).Gather(context.Background(), "eu-west-1")
	assert.ErrorIs(t, err, describeErr)
}

func TestQuickstartGathererEmptyList(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFileInDir(t, dir, QuickstartFile("", "ap-south-1"), `{"amiList": []}`)

	describer := new(MockImageDescriber)
	raws, err := NewQuickstartGatherer(dir, describer).Gather(context.Background(), "ap-south-1")
	require.NoError(t, err)
	assert.Empty(t, raws)
	describer.AssertNotCalled(t, "DescribeImages", mock.Anything, mock.Anything, mock.Anything)
}
