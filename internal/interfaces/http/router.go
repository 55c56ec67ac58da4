package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mazvaris/optiapp/internal/application/auth"
	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/application/usecase"
	"github.com/mazvaris/optiapp/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	PatientUC     *usecase.PatientUseCase
	AppointmentUC *usecase.AppointmentUseCase
	EnquiryUC     *usecase.EnquiryUseCase
	FrameUC       *usecase.FrameUseCase
	StaffUC       *usecase.StaffUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	GridUC        *lens.GridUseCase
	RestockUC     *lens.RestockUseCase
	RemovalUC     *lens.RemovalUseCase
	ReportUC      *lens.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Patients (protegido)
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC)
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)
	patients.Get("/:id/appointments", appointmentHandler.ListByPatient)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Enquiries (protegido)
	enquiries := protected.Group("/enquiries")
	enquiryHandler := NewEnquiryHandler(deps.EnquiryUC)
	enquiries.Post("/", enquiryHandler.Create)
	enquiries.Get("/", enquiryHandler.List)
	enquiries.Get("/:id", enquiryHandler.GetByID)
	enquiries.Put("/:id", enquiryHandler.Update)
	enquiries.Delete("/:id", enquiryHandler.Delete)

	// Frames (protegido; stock restringido a admin y optometrista)
	frames := protected.Group("/frames")
	frameHandler := NewFrameHandler(deps.FrameUC)
	frames.Post("/", frameHandler.Create)
	frames.Get("/", frameHandler.List)
	frames.Get("/:id", frameHandler.GetByID)
	frames.Put("/:id", frameHandler.Update)
	frames.Delete("/:id", RequireRole(entity.RoleAdmin), frameHandler.Delete)
	frames.Post("/:id/stock", RequireRole(entity.RoleAdmin, entity.RoleOptometrist), frameHandler.AdjustStock)

	// Lenses: grilla de stock esfera/cilindro (protegido; mutaciones restringidas)
	lenses := protected.Group("/lenses")
	lensHandler := NewLensHandler(deps.GridUC, deps.RestockUC, deps.RemovalUC, deps.ReportUC)
	lenses.Get("/", lensHandler.ListRecords)
	lenses.Get("/grid", lensHandler.GetGrid)
	lenses.Get("/grid/:cell", lensHandler.GetCell)
	lenses.Get("/report.pdf", lensHandler.StockReportPDF)
	lenses.Post("/bulk-range", lensHandler.ApplyBulkRange)
	lenses.Post("/add", RequireRole(entity.RoleAdmin, entity.RoleOptometrist), lensHandler.AddStock)
	lenses.Post("/remove", RequireRole(entity.RoleAdmin, entity.RoleOptometrist), lensHandler.RemoveStock)

	// Staff (solo admin)
	staff := protected.Group("/staff", RequireRole(entity.RoleAdmin))
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Expenses (solo admin)
	expenses := protected.Group("/expenses", RequireRole(entity.RoleAdmin))
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/totals", expenseHandler.TotalsByCategory)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
}
