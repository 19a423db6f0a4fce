package routes

import (
	"bukubersama-backend/app/service"

	"github.com/gin-gonic/gin"
)

// UniversityRoutes mendaftarkan CRUD tiga tabel hierarki kampus.
// Record dialamatkan lewat query param ?id= (kontrak API lama).
func UniversityRoutes(r *gin.Engine, universityService service.UniversityService) {
	uniGroup := r.Group("/api/v1/universities")
	{
		uniGroup.GET("", universityService.GetUniversities)
		uniGroup.POST("", universityService.CreateUniversity)
		uniGroup.PUT("", universityService.UpdateUniversity)
		uniGroup.DELETE("", universityService.DeleteUniversity)
	}

	facGroup := r.Group("/api/v1/faculties")
	{
		facGroup.GET("", universityService.GetFaculties)
		facGroup.POST("", universityService.CreateFaculty)
		facGroup.PUT("", universityService.UpdateFaculty)
		facGroup.DELETE("", universityService.DeleteFaculty)
	}

	progGroup := r.Group("/api/v1/programs")
	{
		progGroup.GET("", universityService.GetPrograms)
		progGroup.POST("", universityService.CreateProgram)
		progGroup.PUT("", universityService.UpdateProgram)
		progGroup.DELETE("", universityService.DeleteProgram)
	}
}

// UserRoutes mendaftarkan CRUD tabel users.
func UserRoutes(r *gin.Engine, userService service.UserService) {
	userGroup := r.Group("/api/v1/users")
	{
		userGroup.GET("", userService.GetUsers)
		userGroup.POST("", userService.Register)
		userGroup.PUT("", userService.UpdateUser)
		userGroup.DELETE("", userService.DeleteUser)
	}
}

// MaterialRoutes mendaftarkan CRUD materi + endpoint laporan review.
func MaterialRoutes(r *gin.Engine, materialService service.MaterialService) {
	matGroup := r.Group("/api/v1/materials")
	{
		matGroup.GET("", materialService.GetMaterials)
		matGroup.POST("", materialService.CreateMaterial)
		matGroup.PUT("", materialService.UpdateMaterial)
		matGroup.DELETE("", materialService.DeleteMaterial)
		matGroup.GET("/reviews", materialService.GetReview)
	}
}

// CommentRoutes mendaftarkan CRUD komentar.
func CommentRoutes(r *gin.Engine, commentService service.CommentService) {
	comGroup := r.Group("/api/v1/comments")
	{
		comGroup.GET("", commentService.GetComments)
		comGroup.POST("", commentService.CreateComment)
		comGroup.PUT("", commentService.UpdateComment)
		comGroup.DELETE("", commentService.DeleteComment)
	}
}

// AppreciationRoutes mendaftarkan CRUD apresiasi.
func AppreciationRoutes(r *gin.Engine, appreciationService service.AppreciationService) {
	appGroup := r.Group("/api/v1/appreciations")
	{
		appGroup.GET("", appreciationService.GetAppreciations)
		appGroup.POST("", appreciationService.CreateAppreciation)
		appGroup.PUT("", appreciationService.UpdateAppreciation)
		appGroup.DELETE("", appreciationService.DeleteAppreciation)
	}
}

// PointRoutes mendaftarkan CRUD ledger transaksi poin.
func PointRoutes(r *gin.Engine, pointService service.PointService) {
	ptGroup := r.Group("/api/v1/point-transactions")
	{
		ptGroup.GET("", pointService.GetTransactions)
		ptGroup.POST("", pointService.CreateTransaction)
		ptGroup.PUT("", pointService.UpdateTransaction)
		ptGroup.DELETE("", pointService.DeleteTransaction)
	}
}

// CategoryRoutes mendaftarkan CRUD kategori + tabel referensi semester.
func CategoryRoutes(r *gin.Engine, categoryService service.CategoryService) {
	catGroup := r.Group("/api/v1/categories")
	{
		catGroup.GET("", categoryService.GetCategories)
		catGroup.POST("", categoryService.CreateCategory)
		catGroup.PUT("", categoryService.UpdateCategory)
		catGroup.DELETE("", categoryService.DeleteCategory)
	}

	semGroup := r.Group("/api/v1/semesters")
	{
		semGroup.GET("", categoryService.GetSemesters)
		semGroup.POST("", categoryService.CreateSemester)
		semGroup.PUT("", categoryService.UpdateSemester)
		semGroup.DELETE("", categoryService.DeleteSemester)
	}
}
