package core

// ─── Staff roles ───────────────────────────────────────────────────────────────

type Role string

const (
	RoleAdmin Role = "ADMIN" // 管理員：可管理帳號與角色
	RoleHR    Role = "HR"    // 人資：招募與員工作業
)

// ─── Recruitment form status ───────────────────────────────────────────────────

type RecruitmentStatus string

const (
	StatusPending    RecruitmentStatus = "PENDING"
	StatusOnProgress RecruitmentStatus = "ON_PROGRESS"
	StatusInterview  RecruitmentStatus = "INTERVIEW"
	StatusCompleted  RecruitmentStatus = "COMPLETED"
	StatusHired      RecruitmentStatus = "HIRED"
	StatusRejected   RecruitmentStatus = "REJECTED"
	StatusCancelled  RecruitmentStatus = "CANCELLED"
)

// StatusTransitions 定義招募表單允許的狀態流轉。
// 不在表內的狀態（HIRED / REJECTED / CANCELLED）為終態。
var StatusTransitions = map[RecruitmentStatus][]RecruitmentStatus{
	StatusPending:    {StatusOnProgress, StatusRejected, StatusCancelled},
	StatusOnProgress: {StatusInterview, StatusRejected, StatusCancelled},
	StatusInterview:  {StatusCompleted, StatusRejected},
	StatusCompleted:  {StatusHired, StatusRejected},
}

// CanTransition 回報 from → to 是否為允許的流轉
func CanTransition(from, to RecruitmentStatus) bool {
	for _, next := range StatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ─── Employment ────────────────────────────────────────────────────────────────

type EmploymentStatus string

const (
	EmploymentProbation  EmploymentStatus = "PROBATION"
	EmploymentPermanent  EmploymentStatus = "PERMANENT"
	EmploymentContract   EmploymentStatus = "CONTRACT"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
)

type ContractType string

const (
	ContractFullTime   ContractType = "FULL_TIME"
	ContractPartTime   ContractType = "PART_TIME"
	ContractInternship ContractType = "INTERNSHIP"
	ContractOutsourced ContractType = "OUTSOURCED"
)

type ShiftPattern string

const (
	ShiftRegular  ShiftPattern = "REGULAR"
	ShiftMorning  ShiftPattern = "MORNING"
	ShiftEvening  ShiftPattern = "EVENING"
	ShiftNight    ShiftPattern = "NIGHT"
	ShiftRotating ShiftPattern = "ROTATING"
)

// ─── Departments / positions ───────────────────────────────────────────────────

type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "FINANCE"
	DepartmentIT         Department = "IT"
	DepartmentOperations Department = "OPERATIONS"
	DepartmentMarketing  Department = "MARKETING"
	DepartmentWarehouse  Department = "WAREHOUSE"
	DepartmentSecurity   Department = "SECURITY"
)

// DepartmentPrefixes 供員工編號產生使用：<prefix><YY><流水號>
var DepartmentPrefixes = map[Department]string{
	DepartmentHR:         "HR",
	DepartmentFinance:    "FIN",
	DepartmentIT:         "IT",
	DepartmentOperations: "OPS",
	DepartmentMarketing:  "MKT",
	DepartmentWarehouse:  "WH",
	DepartmentSecurity:   "SEC",
}

type Position string

const (
	PositionStaff          Position = "STAFF"
	PositionAdminStaff     Position = "ADMIN_STAFF"
	PositionDriver         Position = "DRIVER"
	PositionOperator       Position = "OPERATOR"
	PositionTechnician     Position = "TECHNICIAN"
	PositionSupervisorRole Position = "SUPERVISOR"
	PositionManager        Position = "MANAGER"
	PositionSecurityGuard  Position = "SECURITY_GUARD"
)

// ─── Applicant closed domains ──────────────────────────────────────────────────

type Education string

const (
	EducationSD  Education = "SD"
	EducationSMP Education = "SMP"
	EducationSMA Education = "SMA"
	EducationSMK Education = "SMK"
	EducationD3  Education = "D3"
	EducationS1  Education = "S1"
	EducationS2  Education = "S2"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Provinces 應徵表單接受的省份清單
var Provinces = []string{
	"ACEH", "SUMATERA UTARA", "SUMATERA BARAT", "RIAU", "JAMBI",
	"SUMATERA SELATAN", "BENGKULU", "LAMPUNG", "KEPULAUAN BANGKA BELITUNG",
	"KEPULAUAN RIAU", "DKI JAKARTA", "JAWA BARAT", "JAWA TENGAH",
	"DI YOGYAKARTA", "JAWA TIMUR", "BANTEN", "BALI", "NUSA TENGGARA BARAT",
	"NUSA TENGGARA TIMUR", "KALIMANTAN BARAT", "KALIMANTAN TENGAH",
	"KALIMANTAN SELATAN", "KALIMANTAN TIMUR", "KALIMANTAN UTARA",
	"SULAWESI UTARA", "SULAWESI TENGAH", "SULAWESI SELATAN",
	"SULAWESI TENGGARA", "GORONTALO", "SULAWESI BARAT", "MALUKU",
	"MALUKU UTARA", "PAPUA", "PAPUA BARAT",
}

// ─── Application documents ─────────────────────────────────────────────────────

type DocumentKind string

const (
	DocumentPhoto              DocumentKind = "photo"
	DocumentCV                 DocumentKind = "cv"
	DocumentIDCard             DocumentKind = "idCard"
	DocumentPoliceClearance    DocumentKind = "policeClearance"
	DocumentVaccineCertificate DocumentKind = "vaccineCertificate"
	DocumentSupporting         DocumentKind = "supporting"
)

// ─── Plan vs actual ────────────────────────────────────────────────────────────

type PlanStatus string

const (
	PlanAbove    PlanStatus = "above"
	PlanBelow    PlanStatus = "below"
	PlanOnTarget PlanStatus = "on-target"
)
