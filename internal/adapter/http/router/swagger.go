package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bytebank Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bytebank Ledger API",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {"type": "http", "scheme": "basic"}
    },
    "schemas": {
      "Holder": {
        "type": "object",
        "required": ["name", "taxId", "email"],
        "properties": {
          "name": {"type": "string"},
          "taxId": {"type": "string", "pattern": "^[0-9]{11}$"},
          "email": {"type": "string", "format": "email"}
        }
      },
      "Movement": {
        "type": "object",
        "required": ["amount"],
        "properties": {
          "amount": {"type": "string"},
          "description": {"type": "string", "maxLength": 500}
        }
      }
    }
  },
  "paths": {
    "/contas": {
      "post": {
        "summary": "Open an account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["number", "holder"],
                "properties": {
                  "number": {"type": "integer", "minimum": 1},
                  "holder": {"$ref": "#/components/schemas/Holder"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account opened"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "409": {"description": "Duplicate account number"},
          "500": {"description": "Server error"}
        }
      },
      "get": {
        "summary": "List accounts",
        "security": [{"BasicAuth": []}],
        "responses": {
          "200": {"description": "Accounts fetched"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/contas/{numero}": {
      "get": {
        "summary": "Get account",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Account fetched"},
          "404": {"description": "Account not found"}
        }
      },
      "delete": {
        "summary": "Close account (policy-dependent soft or hard)",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Account closed"},
          "404": {"description": "Account not found"},
          "409": {"description": "Account still has funds"}
        }
      }
    },
    "/contas/{numero}/saldo": {
      "get": {
        "summary": "Get balance",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Balance fetched"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/contas/{numero}/depositar": {
      "post": {
        "summary": "Deposit funds",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {"schema": {"$ref": "#/components/schemas/Movement"}}
          }
        },
        "responses": {
          "200": {"description": "Deposit applied"},
          "400": {"description": "Invalid amount"},
          "404": {"description": "Account not found"},
          "409": {"description": "Account inactive"}
        }
      }
    },
    "/contas/{numero}/sacar": {
      "post": {
        "summary": "Withdraw funds",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {"schema": {"$ref": "#/components/schemas/Movement"}}
          }
        },
        "responses": {
          "200": {"description": "Withdrawal applied"},
          "400": {"description": "Invalid amount"},
          "404": {"description": "Account not found"},
          "409": {"description": "Insufficient funds or inactive account"}
        }
      }
    },
    "/contas/transferir": {
      "post": {
        "summary": "Transfer between accounts",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fromNumber", "toNumber", "amount"],
                "properties": {
                  "fromNumber": {"type": "integer"},
                  "toNumber": {"type": "integer"},
                  "amount": {"type": "string"},
                  "description": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer applied"},
          "400": {"description": "Invalid amount or same account"},
          "404": {"description": "Account not found"},
          "409": {"description": "Insufficient funds or inactive account"}
        }
      }
    },
    "/historico/conta/{numero}": {
      "get": {
        "summary": "Account history, newest first",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}},
          {"name": "inicio", "in": "query", "schema": {"type": "string", "format": "date"}},
          {"name": "fim", "in": "query", "schema": {"type": "string", "format": "date"}}
        ],
        "responses": {
          "200": {"description": "History fetched"}
        }
      }
    },
    "/historico/tipo/{tipo}": {
      "get": {
        "summary": "History filtered by operation type",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "tipo", "in": "path", "required": true, "schema": {"type": "string", "enum": ["OPEN", "WITHDRAW", "DEPOSIT", "TRANSFER_OUT", "TRANSFER_IN", "CLOSE"]}}],
        "responses": {
          "200": {"description": "History fetched"},
          "400": {"description": "Unknown operation type"}
        }
      }
    },
    "/historico/extrato/{numero}": {
      "get": {
        "summary": "Statement: account snapshot plus history",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "numero", "in": "path", "required": true, "schema": {"type": "integer"}},
          {"name": "inicio", "in": "query", "schema": {"type": "string", "format": "date"}},
          {"name": "fim", "in": "query", "schema": {"type": "string", "format": "date"}}
        ],
        "responses": {
          "200": {"description": "Statement fetched"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/historico/admin/aplicar-taxa": {
      "post": {
        "summary": "Debit a maintenance fee from every active account that can cover it",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "amount": {"type": "string", "example": "12.50"},
                  "description": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Fee applied; counts and collected total returned"},
          "400": {"description": "Invalid amount"}
        }
      }
    },
    "/relatorios/geral": {
      "get": {
        "summary": "Aggregate balances of active accounts",
        "security": [{"BasicAuth": []}],
        "responses": {
          "200": {"description": "Report computed"}
        }
      }
    },
    "/relatorios/saldo-baixo": {
      "get": {
        "summary": "Active accounts below a balance threshold",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "limite", "in": "query", "required": true, "schema": {"type": "string"}}],
        "responses": {
          "200": {"description": "Report computed"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/relatorios/movimentacoes": {
      "get": {
        "summary": "Movement counts and sums per operation type",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "inicio", "in": "query", "required": true, "schema": {"type": "string", "format": "date"}},
          {"name": "fim", "in": "query", "required": true, "schema": {"type": "string", "format": "date"}}
        ],
        "responses": {
          "200": {"description": "Report computed"},
          "400": {"description": "Validation error"}
        }
      }
    }
  }
}`
