package errs

import "github.com/m-mizutani/goerr/v2"

var (
	TagNotFound   = goerr.NewTag("not_found")
	TagValidation = goerr.NewTag("validation")
	TagConflict   = goerr.NewTag("conflict")
	TagDocument   = goerr.NewTag("document")
	TagInternal   = goerr.NewTag("internal")
)

// RepositoryKey identifies which repository implementation produced an
// error.
var RepositoryKey = goerr.NewTypedKey[string]("repository")
