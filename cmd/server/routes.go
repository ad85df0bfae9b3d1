package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"nexuserv.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	intakeHandler  *handlers.IntakeHandler
	adminHandler   *handlers.AdminHandler
	serviceHandler *handlers.ServiceHandler
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Application intake and CV reads
	r.POST("/postulaciones", d.intakeHandler.CreateApplication)
	cvs := r.Group("/cvs")
	{
		cvs.GET("/detalle/:id", d.intakeHandler.GetCVDetail)
		cvs.GET("/apto", d.intakeHandler.ListApproved)
		cvs.GET("/estado/:estado", d.intakeHandler.ListByStatus)
	}
	r.GET("/get-cv-url/:blobName", d.intakeHandler.GetCVURL)

	// Auth
	r.POST("/auth/cliente", d.authHandler.LoginClient)

	// Admin
	admin := r.Group("/admin")
	{
		admin.GET("/usuarios", d.adminHandler.ListUsers)
		admin.PUT("/usuarios/:id/estado", d.adminHandler.UpdateUserStatus)
		admin.GET("/pagos", d.adminHandler.ListPayments)
		admin.PUT("/pagos/:id/estado", d.adminHandler.UpdatePaymentStatus)
		admin.GET("/solicitudes", d.adminHandler.ListServiceRequests)
	}
	r.GET("/service-requests/detalles", d.adminHandler.ListServiceRequestDetails)
	r.PUT("/postulantes/aceptar/:id", d.adminHandler.AcceptApplicant)

	// Service catalog
	services := r.Group("/services")
	{
		services.POST("/", d.serviceHandler.CreateService)
		services.GET("/", d.serviceHandler.ListServices)
		services.PUT("/:id", d.serviceHandler.UpdateService)
		services.DELETE("/:id", d.serviceHandler.DeleteService)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
