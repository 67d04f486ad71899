package hr

type Service struct {
	employees     EmployeeRepo
	registrar     Registrar
	departments   DepartmentRepo
	leaves        LeaveRepo
	announcements AnnouncementRepo
}

func NewService(
	employees EmployeeRepo,
	registrar Registrar,
	departments DepartmentRepo,
	leaves LeaveRepo,
	announcements AnnouncementRepo,
) *Service {
	return &Service{
		employees:     employees,
		registrar:     registrar,
		departments:   departments,
		leaves:        leaves,
		announcements: announcements,
	}
}
