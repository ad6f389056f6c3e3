// Package docs registers the OpenAPI description served at /v1/swagger. Keep it in step with
// the handler annotations; it follows the layout `swag init -g cmd/api/main.go` writes.
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
        "/leads": {
            "post": {
                "description": "Validates the investor's contact details and returns an AI investment strategy. Invalid contact fields return 422 with per-field errors and the strategy is not requested.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Submit Lead",
                "parameters": [
                    {
                        "description": "Lead",
                        "name": "lead",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.LeadData"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.StrategyResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"error": {"$ref": "#/definitions/domain.ValidationState"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/leads/form/events": {
            "post": {
                "description": "Applies an edit, blur, submit, complete or reset event to the lead form session and returns the next session with field statuses, visible errors and submit gating.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Apply Form Event",
                "parameters": [
                    {
                        "description": "Session and event",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/v1.FormEventRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/leadform.View"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/leads/format-mobile": {
            "post": {
                "description": "Applies the as-you-type UAE mobile formatter. Input not starting with + or 971 is returned unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Format Mobile Input",
                "parameters": [
                    {
                        "description": "Raw input",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/v1.FormatMobileRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/v1.FormatMobileResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/leads/options": {
            "get": {
                "description": "Budget ranges and property types the form offers, with their defaults",
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Lead Form Options",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.LeadOptions"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/market/chart": {
            "get": {
                "description": "Average ROI by district, with the given area highlighted",
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Comparative ROI Chart",
                "parameters": [
                    {"type": "string", "description": "Area name to highlight", "name": "highlight", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.ROIChart"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/market/insights": {
            "get": {
                "description": "Top performing districts with the selected one. Falls back to a fixed list when the AI is unavailable.",
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Market Insights",
                "parameters": [
                    {"type": "string", "description": "District id to select", "name": "selected", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.MarketBoard"}}}
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.ChartBar": {
            "type": "object",
            "properties": {
                "highlighted": {"type": "boolean"},
                "name": {"type": "string"},
                "roi": {"type": "number"}
            }
        },
        "domain.Coordinates": {
            "type": "object",
            "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "domain.LeadData": {
            "type": "object",
            "properties": {
                "budget": {"type": "string", "example": "AED 1M - 3M"},
                "email": {"type": "string", "example": "investor@example.com"},
                "mobile": {"type": "string", "example": "+971 50 123 4567"},
                "property_type": {"type": "string", "example": "Apartment"}
            }
        },
        "domain.LeadOptions": {
            "type": "object",
            "properties": {
                "budget_ranges": {"type": "array", "items": {"type": "string"}},
                "default_budget": {"type": "string"},
                "default_property_type": {"type": "string"},
                "property_types": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.MarketBoard": {
            "type": "object",
            "properties": {
                "fallback": {"type": "boolean"},
                "insights": {"type": "array", "items": {"$ref": "#/definitions/domain.MarketInsight"}},
                "selected_id": {"type": "string"}
            }
        },
        "domain.MarketInsight": {
            "type": "object",
            "properties": {
                "area": {"type": "string"},
                "avgPrice": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/domain.Coordinates"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "roi": {"type": "number"},
                "trend": {"type": "string", "enum": ["up", "down", "stable"]}
            }
        },
        "domain.ROIChart": {
            "type": "object",
            "properties": {
                "bars": {"type": "array", "items": {"$ref": "#/definitions/domain.ChartBar"}},
                "target_max": {"type": "number"},
                "target_min": {"type": "number"},
                "y_max": {"type": "number"},
                "y_min": {"type": "number"}
            }
        },
        "domain.StrategyResult": {
            "type": "object",
            "properties": {
                "advisor_contact": {"type": "string"},
                "fallback": {"type": "boolean"},
                "mobile": {"$ref": "#/definitions/validation.MobileInfo"},
                "strategy": {"type": "string"}
            }
        },
        "domain.ValidationState": {
            "type": "object",
            "properties": {
                "email": {"$ref": "#/definitions/validation.FieldError"},
                "mobile": {"$ref": "#/definitions/validation.FieldError"}
            }
        },
        "leadform.Decision": {
            "type": "object",
            "properties": {
                "allowed": {"type": "boolean"},
                "errors": {"$ref": "#/definitions/domain.ValidationState"}
            }
        },
        "leadform.Form": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.LeadData"},
                "touched": {"type": "object", "additionalProperties": {"type": "boolean"}}
            }
        },
        "leadform.Session": {
            "type": "object",
            "properties": {
                "form": {"$ref": "#/definitions/leadform.Form"},
                "phase": {"type": "string", "enum": ["idle", "submitting", "completed"]}
            }
        },
        "leadform.View": {
            "type": "object",
            "properties": {
                "decision": {"$ref": "#/definitions/leadform.Decision"},
                "errors": {"$ref": "#/definitions/domain.ValidationState"},
                "ready": {"type": "boolean"},
                "session": {"$ref": "#/definitions/leadform.Session"},
                "statuses": {"type": "object", "additionalProperties": {"type": "string"}},
                "submit_disabled": {"type": "boolean"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "v1.FormEventRequest": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "enum": ["email", "mobile", "budget", "property_type"]},
                "session": {"$ref": "#/definitions/leadform.Session"},
                "type": {"type": "string", "enum": ["edit", "blur", "submit", "complete", "reset"]},
                "value": {"type": "string"}
            }
        },
        "v1.FormatMobileRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "example": "971501234567"}
            }
        },
        "v1.FormatMobileResponse": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "example": "+971 50 123 4567"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["required", "invalid_format"]},
                "message": {"type": "string"}
            }
        },
        "validation.MobileInfo": {
            "type": "object",
            "properties": {
                "e164": {"type": "string"},
                "international": {"type": "string"},
                "line_type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Realty UAE API",
	Description:      "Lead capture and AI market intelligence for UAE property investors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
