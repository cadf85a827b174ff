package boletos

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for request structs.
var validate = validator.New()
