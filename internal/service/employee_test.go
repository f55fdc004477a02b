package service

import (
	"testing"
	"time"

	"recruithub/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSequencedID(t *testing.T) {
	testCases := []struct {
		name       string
		yearPrefix string
		latest     string
		expected   string
	}{
		{"no existing id starts at 001", "IT26", "", "IT26001"},
		{"increments max existing sequence", "IT26", "IT26007", "IT26008"},
		{"keeps leading zeros", "HR26", "HR26001", "HR26002"},
		{"rolls past three digits without wrapping", "IT26", "IT26999", "IT261000"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := nextSequencedID(tc.yearPrefix, tc.latest)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, next)
		})
	}
}

func TestNextSequencedID_MalformedTail(t *testing.T) {
	// 尾碼非數字代表庫內編號已壞；重新從 1 起算只會撞唯一索引
	_, err := nextSequencedID("IT26", "IT26ABC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IT26ABC")
}

func TestMigrationEmploymentStatus(t *testing.T) {
	probationEnd := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	contract := core.EmploymentContract

	// 有試用期結束日一律 PROBATION，請求指定的狀態被忽略
	assert.Equal(t, core.EmploymentProbation, migrationEmploymentStatus(nil, &probationEnd))
	assert.Equal(t, core.EmploymentProbation, migrationEmploymentStatus(&contract, &probationEnd))

	// 沒有試用期時依請求指定
	assert.Equal(t, core.EmploymentContract, migrationEmploymentStatus(&contract, nil))

	// 都不帶時預設 PERMANENT
	assert.Equal(t, core.EmploymentPermanent, migrationEmploymentStatus(nil, nil))
}
