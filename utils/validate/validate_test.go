package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("ADMIN"))
	assert.True(t, IsValidRole("HR"))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("SUPERUSER"))
	assert.False(t, IsValidRole(""))
}

func TestIsValidRecruitmentStatus(t *testing.T) {
	for _, status := range []string{"PENDING", "ON_PROGRESS", "INTERVIEW", "COMPLETED", "HIRED", "REJECTED", "CANCELLED"} {
		assert.True(t, IsValidRecruitmentStatus(status), status)
	}
	assert.False(t, IsValidRecruitmentStatus("pending"))
	assert.False(t, IsValidRecruitmentStatus("DONE"))
}

func TestIsValidDepartment(t *testing.T) {
	for _, department := range []string{"HR", "FINANCE", "IT", "OPERATIONS", "MARKETING", "WAREHOUSE", "SECURITY"} {
		assert.True(t, IsValidDepartment(department), department)
	}
	assert.False(t, IsValidDepartment("LEGAL"))
	assert.False(t, IsValidDepartment("it"))
}

func TestIsValidProvince(t *testing.T) {
	// 不分大小寫、允許前後空白
	assert.True(t, IsValidProvince("DKI JAKARTA"))
	assert.True(t, IsValidProvince("dki jakarta"))
	assert.True(t, IsValidProvince("  Jawa Barat  "))
	assert.False(t, IsValidProvince("JAKARTA"))
	assert.False(t, IsValidProvince(""))
}

func TestIsValidGender(t *testing.T) {
	assert.True(t, IsValidGender("MALE"))
	assert.True(t, IsValidGender("FEMALE"))
	assert.False(t, IsValidGender("OTHER"))
}

func TestIsValidEducation(t *testing.T) {
	for _, education := range []string{"SD", "SMP", "SMA", "SMK", "D3", "S1", "S2"} {
		assert.True(t, IsValidEducation(education), education)
	}
	assert.False(t, IsValidEducation("S3"))
}

func TestIsValidEmploymentFields(t *testing.T) {
	assert.True(t, IsValidEmploymentStatus("PROBATION"))
	assert.True(t, IsValidEmploymentStatus("TERMINATED"))
	assert.False(t, IsValidEmploymentStatus("RETIRED"))

	assert.True(t, IsValidContractType("FULL_TIME"))
	assert.False(t, IsValidContractType("FREELANCE"))

	assert.True(t, IsValidShiftPattern("ROTATING"))
	assert.False(t, IsValidShiftPattern("WEEKEND"))
}
