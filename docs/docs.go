// Package docs holds the swagger document served at /swagger. Keep it in
// step with the handler annotations; `swag init` regenerates it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/contributions": {
            "post": {
                "description": "Categorise content and raise demand for the matching token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contributions"],
                "summary": "Submit contribution",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.ContributionRequestBody"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ContributionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/rates": {
            "get": {
                "description": "Get every active pair with its current rate",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "List active pairs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ListPairsResponse"}}
                }
            }
        },
        "/rates/estimate": {
            "post": {
                "description": "Quote a swap against the live rate table",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Estimate swap output",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.SwapRequestBody"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.EstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/rates/reset": {
            "post": {
                "description": "Restore default rates, demand and volume",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Reset rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.StatusResponse"}}
                }
            }
        },
        "/rates/{from}/{to}": {
            "get": {
                "description": "Get the current rate of an active directed pair",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Get pair rate",
                "parameters": [
                    {"type": "string", "description": "From token", "name": "from", "in": "path", "required": true},
                    {"type": "string", "description": "To token", "name": "to", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.RateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/swaps": {
            "post": {
                "description": "Record an executed swap; volume and demand feed the next rates",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["swaps"],
                "summary": "Record swap",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.SwapRequestBody"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.RecordSwapResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/swaps/validate": {
            "post": {
                "description": "Check that a pair is active and the amount is inside its limits",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["swaps"],
                "summary": "Validate swap",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.SwapRequestBody"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ValidateSwapResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/tokens/{token}/demand": {
            "get": {
                "description": "Get the current demand weight of a token",
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "Get token demand",
                "parameters": [
                    {"type": "string", "description": "Token", "name": "token", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DemandResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/tokens/{token}/pairs": {
            "get": {
                "description": "Get active pairs where the token is on either side",
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "List pairs for a token",
                "parameters": [
                    {"type": "string", "description": "Token", "name": "token", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ListPairsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "pair not found"}}
        },
        "http.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "reset"}}
        },
        "http.ContributionRequestBody": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Generative art study"},
                "description": {"type": "string", "example": "A series of paintings drawn with code"},
                "category": {"type": "string", "example": "CREATIVE"},
                "score": {"type": "number", "maximum": 10, "minimum": 0, "example": 7.5}
            }
        },
        "http.ContributionResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "CREATIVE"},
                "score": {"type": "number", "example": 7.5}
            }
        },
        "http.DemandResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string", "example": "VIZ"},
                "demand": {"type": "number", "example": 1}
            }
        },
        "http.EstimateResponse": {
            "type": "object",
            "properties": {
                "from_token": {"type": "string", "example": "STX"},
                "to_token": {"type": "string", "example": "VIZ"},
                "amount": {"type": "string", "example": "100.0"},
                "output_amount": {"type": "string", "example": "198.0"},
                "fee": {"type": "string", "example": "1.0"}
            }
        },
        "http.ListPairsResponse": {
            "type": "object",
            "properties": {
                "pairs": {"type": "array", "items": {"$ref": "#/definitions/http.PairDto"}}
            }
        },
        "http.PairDto": {
            "type": "object",
            "properties": {
                "from_token": {"type": "string", "example": "STX"},
                "to_token": {"type": "string", "example": "VIZ"},
                "rate": {"type": "string", "example": "2.0"},
                "fee": {"type": "string", "example": "0.01"},
                "min_amount": {"type": "string", "example": "1"},
                "max_amount": {"type": "string", "example": "1000"},
                "is_active": {"type": "boolean", "example": true}
            }
        },
        "http.RateResponse": {
            "type": "object",
            "properties": {
                "from_token": {"type": "string", "example": "STX"},
                "to_token": {"type": "string", "example": "VIZ"},
                "rate": {"type": "string", "example": "2.0"}
            }
        },
        "http.RecordSwapResponse": {
            "type": "object",
            "properties": {
                "from_token": {"type": "string", "example": "STX"},
                "to_token": {"type": "string", "example": "VIZ"},
                "amount": {"type": "string", "example": "100.0"},
                "rate": {"type": "string", "example": "2.2508"}
            }
        },
        "http.SwapRequestBody": {
            "type": "object",
            "required": ["amount", "from_token", "to_token"],
            "properties": {
                "from_token": {"type": "string", "example": "STX"},
                "to_token": {"type": "string", "example": "VIZ"},
                "amount": {"type": "string", "example": "100.0"}
            }
        },
        "http.ValidateSwapResponse": {
            "type": "object",
            "properties": {"valid": {"type": "boolean", "example": true}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Token Rates API",
	Description:      "Dynamic token exchange-rate engine: rates, estimates, swaps and contribution-driven demand.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
