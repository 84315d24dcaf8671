package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	authHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/auth"
	reportesHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/reportes"
	reservasHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/reservas"
	reservaServiciosHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/reservaservicios"
	salonesHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/salones"
	serviciosHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/servicios"
	turnosHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/turnos"
	usuariosHandler "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/usuarios"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/middleware"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/config"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
	reservaServicioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reservaservicio"
	salonRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/salon"
	servicioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/servicio"
	turnoRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/turno"
	usuarioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/usuario"
	authService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/auth"
	notificacionesService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/notificaciones"
	reportesService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/reportes"
	reservasService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/reservas"
	reservaServiciosService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/reservaservicios"
	salonesService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/salones"
	serviciosService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/servicios"
	turnosService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/turnos"
	usuariosService "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/usuarios"
	actualizarReservaUC "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/actualizar_reserva"
	crearReservaUC "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/crear_reserva"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/logger"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/metrics"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

func main() {
	// Variables de entorno locales (.env no se versiona)
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("No se pudo cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("No se pudo inicializar el logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Iniciando PlanCumple API...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Métricas habilitadas en %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("No se pudo abrir la conexión a la base: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("No se pudo conectar a la base: %v", err)
	}
	log.Info("Conectado a PostgreSQL (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("No se pudo conectar a Redis: %v", err)
		}
		defer rdb.Close()
		log.Info("Cache Redis habilitada (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Repositorios
	salones := salonRepo.NewRepository(db)
	turnos := turnoRepo.NewRepository(db)
	servicios := servicioRepo.NewRepository(db)
	usuarios := usuarioRepo.NewRepository(db)
	reservas := reservaRepo.NewRepository(db)
	reservasServicios := reservaServicioRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Servicios
	salonesSvc := salonesService.NewService(salones, log)
	turnosSvc := turnosService.NewService(turnos, log)
	serviciosSvc := serviciosService.NewService(servicios, log)
	usuariosSvc := usuariosService.NewService(usuarios, log)
	reservasSvc := reservasService.NewService(reservas, txMgr, log)
	reservaServiciosSvc := reservaServiciosService.NewService(
		reservasServicios,
		reservas,
		servicios,
		txMgr,
		log,
	)
	authSvc := authService.NewService(usuarios, cfg.Auth.Secret, cfg.Auth.ExpiryHours, log)
	notificadorSvc := notificacionesService.NewService(
		cfg.Email.Enabled,
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.User,
		cfg.Email.Password,
		cfg.Email.From,
		log,
	)
	reportesSvc := reportesService.NewService(reservas, log)

	// Casos de uso
	crearReserva := crearReservaUC.NewUseCase(
		reservas,
		reservasServicios,
		salones,
		usuarios,
		turnos,
		servicios,
		notificadorSvc,
		txMgr,
		log,
	)
	actualizarReserva := actualizarReservaUC.NewUseCase(
		reservas,
		salones,
		usuarios,
		turnos,
		txMgr,
		log,
	)

	// Handlers
	salonesH := salonesHandler.NewHandler(salonesSvc, log)
	turnosH := turnosHandler.NewHandler(turnosSvc, log)
	serviciosH := serviciosHandler.NewHandler(serviciosSvc, log)
	usuariosH := usuariosHandler.NewHandler(usuariosSvc, log)
	authH := authHandler.NewHandler(authSvc, usuariosSvc, log)
	reservasH := reservasHandler.NewHandler(crearReserva, actualizarReserva, reservasSvc, log)
	reservaServiciosH := reservaServiciosHandler.NewHandler(reservaServiciosSvc, log)
	reportesH := reportesHandler.NewHandler(reportesSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Rutas públicas: autenticación y lecturas del catálogo
	publico := api.PathPrefix("").Subrouter()
	if cfg.Cache.Enabled {
		publico.Use(middleware.Cache(cfg.Cache, rdb, log))
	}

	publico.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)
	publico.HandleFunc("/auth/registro", authH.Registro).Methods(http.MethodPost)

	publico.HandleFunc("/salones", salonesH.List).Methods(http.MethodGet)
	publico.HandleFunc("/salones/estadisticas", salonesH.Stats).Methods(http.MethodGet)
	publico.HandleFunc("/salones/{id}", salonesH.Get).Methods(http.MethodGet)
	publico.HandleFunc("/turnos", turnosH.List).Methods(http.MethodGet)
	publico.HandleFunc("/turnos/{id}", turnosH.Get).Methods(http.MethodGet)
	publico.HandleFunc("/servicios", serviciosH.List).Methods(http.MethodGet)
	publico.HandleFunc("/servicios/{id}", serviciosH.Get).Methods(http.MethodGet)
	publico.HandleFunc("/reservas/disponibilidad", reservasH.Disponibilidad).Methods(http.MethodGet)

	// Rutas protegidas: requieren token Bearer. La cache corre después
	// de la autenticación para no servir respuestas sin validar el token.
	protegido := api.PathPrefix("").Subrouter()
	protegido.Use(middleware.Auth(authSvc, log))
	if cfg.Cache.Enabled {
		protegido.Use(middleware.Cache(cfg.Cache, rdb, log))
	}

	protegido.HandleFunc("/salones", salonesH.Create).Methods(http.MethodPost)
	protegido.HandleFunc("/salones/{id}", salonesH.Update).Methods(http.MethodPut)
	protegido.HandleFunc("/salones/{id}", salonesH.Delete).Methods(http.MethodDelete)

	protegido.HandleFunc("/turnos", turnosH.Create).Methods(http.MethodPost)
	protegido.HandleFunc("/turnos/{id}", turnosH.Update).Methods(http.MethodPut)
	protegido.HandleFunc("/turnos/{id}", turnosH.Delete).Methods(http.MethodDelete)

	protegido.HandleFunc("/servicios", serviciosH.Create).Methods(http.MethodPost)
	protegido.HandleFunc("/servicios/{id}", serviciosH.Update).Methods(http.MethodPut)
	protegido.HandleFunc("/servicios/{id}", serviciosH.Delete).Methods(http.MethodDelete)
	protegido.HandleFunc("/servicios/{id}/reservas", reservaServiciosH.ListByServicio).Methods(http.MethodGet)

	protegido.HandleFunc("/usuarios", usuariosH.List).Methods(http.MethodGet)
	protegido.HandleFunc("/usuarios", usuariosH.Create).Methods(http.MethodPost)
	protegido.HandleFunc("/usuarios/{id}", usuariosH.Get).Methods(http.MethodGet)
	protegido.HandleFunc("/usuarios/{id}", usuariosH.Update).Methods(http.MethodPut)
	protegido.HandleFunc("/usuarios/{id}", usuariosH.Delete).Methods(http.MethodDelete)

	protegido.HandleFunc("/reservas", reservasH.List).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas", reservasH.Create).Methods(http.MethodPost)
	protegido.HandleFunc("/reservas/estadisticas", reservasH.Stats).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/proximas", reservasH.ListProximas).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/rango", reservasH.ListByRango).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/usuario/{id}", reservasH.ListByUsuario).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/salon/{id}", reservasH.ListBySalon).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/fecha/{fecha}", reservasH.ListByFecha).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/{id}", reservasH.Get).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/{id}", reservasH.Update).Methods(http.MethodPut)
	protegido.HandleFunc("/reservas/{id}", reservasH.Delete).Methods(http.MethodDelete)
	protegido.HandleFunc("/reservas/{id}/recalcular-total", reservasH.RecalcularTotal).Methods(http.MethodPost)

	protegido.HandleFunc("/reservas/{id}/servicios", reservaServiciosH.ListByReserva).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas/{id}/servicios", reservaServiciosH.Create).Methods(http.MethodPost)
	protegido.HandleFunc("/reservas/{id}/servicios", reservaServiciosH.Replace).Methods(http.MethodPut)
	protegido.HandleFunc("/reservas/{id}/servicios", reservaServiciosH.DeleteByReserva).Methods(http.MethodDelete)
	protegido.HandleFunc("/reservas/{id}/servicios/lote", reservaServiciosH.CreateBatch).Methods(http.MethodPost)
	protegido.HandleFunc("/reservas/{id}/servicios/total", reservaServiciosH.Total).Methods(http.MethodGet)

	protegido.HandleFunc("/reservas-servicios", reservaServiciosH.List).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas-servicios/estadisticas", reservaServiciosH.Stats).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas-servicios/{id}", reservaServiciosH.Get).Methods(http.MethodGet)
	protegido.HandleFunc("/reservas-servicios/{id}", reservaServiciosH.Delete).Methods(http.MethodDelete)

	protegido.HandleFunc("/reportes/reservas", reportesH.Reservas).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Servidor escuchando en %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("El servidor no pudo iniciar: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Apagando el servidor...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error en el apagado: %v", err)
	}

	log.Info("Servidor detenido")
}
