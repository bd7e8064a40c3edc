package config

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// buildDSN assembles a MySQL DSN from the structured database block.
func buildDSN(db *rawDatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = valueOr(db.User, defaultDBUser)
	mc.Passwd = valueOr(db.Password, defaultDBPassword)
	mc.Net = "tcp"
	port := db.Port
	if port <= 0 {
		port = defaultDBPort
	}
	mc.Addr = fmt.Sprintf("%s:%d", valueOr(db.Host, defaultDBHost), port)
	mc.DBName = valueOr(db.Name, defaultDBName)
	mc.ParseTime = true
	mc.Params = map[string]string{
		"charset": valueOr(db.Charset, defaultDBCharset),
		"loc":     valueOr(db.Loc, defaultDBLoc),
	}
	return mc.FormatDSN()
}

func valueOr(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
