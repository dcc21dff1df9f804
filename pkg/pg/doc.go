// Package pg bootstraps the PostgreSQL connection pool (github.com/jackc/pgx/v5)
// and offers helpers to classify driver errors.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	srv.Healthcheck("postgres", pg.Healthcheck(pool))
//
// Schema migrations are not run by the service; the schema is applied out of
// band.
package pg
