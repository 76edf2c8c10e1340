// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
)

// DBDeps holds the back-end dependencies for the app. StrataAdmin has no
// database of its own; its back end is the platform REST API.
type DBDeps struct {
	API        *platformapi.Client
	HTTPClient *http.Client
}
