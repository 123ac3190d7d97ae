package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	session echo.MiddlewareFunc,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
		WhoAmI(echo.Context) error
	},
	chiliCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		UploadPhoto(echo.Context) error
	},
	activityCtrl interface {
		ListMine(echo.Context) error
		ListAll(echo.Context) error
	},
	statsCtrl interface {
		Dashboard(echo.Context) error
		Overdue(echo.Context) error
	},
	transferCtrl interface {
		ExportCSV(echo.Context) error
		ExportXLSX(echo.Context) error
		Import(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/auth/register", authCtrl.Register)
	e.POST("/auth/login", authCtrl.Login)
	e.POST("/auth/logout", authCtrl.Logout)

	api := e.Group("", session)
	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/chilies", chiliCtrl.Create)
	api.GET("/chilies", chiliCtrl.List)
	api.GET("/chilies/:id", chiliCtrl.Get)
	api.PUT("/chilies/:id", chiliCtrl.Update)
	api.DELETE("/chilies/:id", chiliCtrl.Delete)
	api.POST("/chilies/:id/photo", chiliCtrl.UploadPhoto)

	api.GET("/activity", activityCtrl.ListMine)
	api.GET("/activity/all", activityCtrl.ListAll)

	api.GET("/dashboard", statsCtrl.Dashboard)
	api.GET("/dashboard/overdue", statsCtrl.Overdue)

	api.GET("/export/csv", transferCtrl.ExportCSV)
	api.GET("/export/xlsx", transferCtrl.ExportXLSX)
	api.POST("/import", transferCtrl.Import)

	return e
}
