// Package docs is the swagger document served at /swagger/*.
// Regenerate from the repo root with: swag init -g app/api/main.go -o app/api/docs
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
        "/accounts/{account}/stakes": {
            "get": {
                "description": "Preview level and pending reward of the entries of account",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stakes"
                ],
                "summary": "List positions",
                "parameters": [
                    {
                        "type": "string",
                        "example": "alice",
                        "description": "account",
                        "name": "account",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "stake token code",
                        "name": "symbol",
                        "in": "query",
                        "example": "PURPLE"
                    },
                    {
                        "type": "integer",
                        "description": "offset",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "limit",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/staking.Position"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/admin/params": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Create or update the config of a stakeable token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Set token params",
                "parameters": [
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.setParams.payload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/staking.TokenConfig"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "409": {
                        "description": "Conflict"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/admin/pause": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Pause one token, or every token when contract or symbol is empty or symbol is ALL",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Pause or resume",
                "parameters": [
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.setPause.payload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "object",
                                            "properties": {
                                                "updated": {
                                                    "type": "integer"
                                                }
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Issue a new token for the principal of the current one",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Refresh access token",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "string"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/configs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "List token configs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "reward token code",
                        "name": "rewardSymbol",
                        "in": "query",
                        "example": "BLUX"
                    },
                    {
                        "type": "string",
                        "description": "stake token contract",
                        "name": "stakeContract",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "paused",
                        "name": "paused",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "offset",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "limit",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/staking.TokenConfig"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/configs/{symbol}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Get token config",
                "parameters": [
                    {
                        "type": "string",
                        "example": "PURPLE",
                        "description": "stake token code",
                        "name": "symbol",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/staking.TokenConfig"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/healthcheck.Report"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/healthcheck.Report"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/notify/transfer": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Deposit on an incoming stake token transfer, other transfers are ignored",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stakes"
                ],
                "summary": "Notify a transfer",
                "parameters": [
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.notifyTransfer.payload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/staking.DepositResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "409": {
                        "description": "Conflict"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/stakes/claim": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Pay the rewards of every entry of account, paused tokens are skipped",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stakes"
                ],
                "summary": "Claim rewards",
                "parameters": [
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.claim.payload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/staking.ClaimResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/stakes/unstake": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Withdraw quantity from an entry once its unstake period has passed",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stakes"
                ],
                "summary": "Unstake",
                "parameters": [
                    {
                        "description": "params",
                        "name": "params",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.unstake.payload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/staking.UnstakeResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "412": {
                        "description": "Precondition Failed"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/transfers": {
            "get": {
                "description": "Newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transfers"
                ],
                "summary": "List transfer instructions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "receiver",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "status",
                        "name": "status",
                        "in": "query",
                        "enum": [
                            "pending",
                            "sent",
                            "failed"
                        ]
                    },
                    {
                        "type": "string",
                        "description": "kind",
                        "name": "kind",
                        "in": "query",
                        "enum": [
                            "reward",
                            "refund"
                        ]
                    },
                    {
                        "type": "integer",
                        "description": "offset",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "limit",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "type": "object"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/transfer.Instruction"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.ExtendedSymbol": {
            "type": "object",
            "properties": {
                "contract": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string",
                    "example": "4,PURPLE"
                }
            }
        },
        "healthcheck.Report": {
            "type": "object",
            "properties": {
                "mongo": {
                    "type": "string"
                },
                "redis": {
                    "type": "string"
                }
            }
        },
        "http.claim.payload": {
            "type": "object",
            "required": [
                "account"
            ],
            "properties": {
                "account": {
                    "type": "string",
                    "example": "alice"
                }
            }
        },
        "http.notifyTransfer.payload": {
            "type": "object",
            "required": [
                "contract",
                "from",
                "to"
            ],
            "properties": {
                "contract": {
                    "type": "string"
                },
                "from": {
                    "type": "string"
                },
                "memo": {
                    "type": "string",
                    "maxLength": 256
                },
                "quantity": {
                    "type": "string",
                    "example": "100.0000 PURPLE"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "http.setParams.payload": {
            "type": "object",
            "required": [
                "rewardContract",
                "rewardRate",
                "stakeContract",
                "unstakePeriod"
            ],
            "properties": {
                "rewardContract": {
                    "type": "string"
                },
                "rewardRate": {
                    "type": "integer"
                },
                "rewardSymbol": {
                    "type": "string",
                    "example": "4,BLUX"
                },
                "stakeContract": {
                    "type": "string"
                },
                "stakeSymbol": {
                    "type": "string",
                    "example": "4,PURPLE"
                },
                "unstakePeriod": {
                    "type": "integer"
                }
            }
        },
        "http.setPause.payload": {
            "type": "object",
            "properties": {
                "contract": {
                    "type": "string"
                },
                "shouldPause": {
                    "type": "boolean"
                },
                "symbol": {
                    "description": "Symbol is \"<precision>,<code>\", \"ALL\" or empty for every config",
                    "type": "string"
                }
            }
        },
        "http.unstake.payload": {
            "type": "object",
            "required": [
                "account"
            ],
            "properties": {
                "account": {
                    "type": "string",
                    "example": "alice"
                },
                "quantity": {
                    "type": "string",
                    "example": "100.0000 PURPLE"
                }
            }
        },
        "staking.ClaimResult": {
            "type": "object",
            "properties": {
                "payouts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/staking.Payout"
                    }
                },
                "skipped": {
                    "description": "Skipped lists stake symbols whose claims are paused",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "staking.DepositResult": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                },
                "entry": {
                    "$ref": "#/definitions/staking.StakeEntry"
                },
                "ignored": {
                    "description": "Ignored is set when the transfer is not a stake deposit, Reason tells why",
                    "type": "boolean"
                },
                "payouts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/staking.Payout"
                    }
                },
                "reason": {
                    "type": "string"
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "staking.LevelInfo": {
            "type": "object",
            "properties": {
                "bonus": {
                    "type": "integer"
                },
                "level": {
                    "type": "integer"
                },
                "nextLevelGap": {
                    "type": "integer"
                }
            }
        },
        "staking.Payout": {
            "type": "object",
            "properties": {
                "instruction": {
                    "$ref": "#/definitions/transfer.Instruction"
                },
                "reward": {
                    "$ref": "#/definitions/staking.Reward"
                },
                "symbol": {
                    "type": "string"
                }
            }
        },
        "staking.Position": {
            "type": "object",
            "properties": {
                "accrued": {
                    "type": "string"
                },
                "claimableIn": {
                    "type": "integer"
                },
                "entry": {
                    "$ref": "#/definitions/staking.StakeEntry"
                },
                "level": {
                    "$ref": "#/definitions/staking.LevelInfo"
                },
                "paused": {
                    "type": "boolean"
                },
                "unlocksIn": {
                    "type": "integer"
                }
            }
        },
        "staking.Reward": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "daysPassed": {
                    "type": "integer"
                },
                "elapsed": {
                    "type": "integer"
                },
                "level": {
                    "$ref": "#/definitions/staking.LevelInfo"
                },
                "rateFactor": {
                    "type": "integer"
                },
                "units": {
                    "description": "Units is the whole number of stake tokens held, fractions never earn",
                    "type": "integer"
                }
            }
        },
        "staking.StakeEntry": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "lastClaim": {
                    "type": "string"
                },
                "stakedAmount": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "staking.TokenConfig": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "creator": {
                    "type": "string"
                },
                "isPaused": {
                    "type": "boolean"
                },
                "rewardRate": {
                    "description": "RewardRate is the daily rate multiplied by 100",
                    "type": "integer"
                },
                "rewardToken": {
                    "$ref": "#/definitions/domain.ExtendedSymbol"
                },
                "stakeToken": {
                    "$ref": "#/definitions/domain.ExtendedSymbol"
                },
                "unstakePeriod": {
                    "description": "UnstakePeriod is the number of seconds since the last claim before a withdrawal is allowed",
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "staking.UnstakeResult": {
            "type": "object",
            "properties": {
                "entry": {
                    "description": "Entry is nil once the whole stake is withdrawn",
                    "allOf": [
                        {
                            "$ref": "#/definitions/staking.StakeEntry"
                        }
                    ]
                },
                "payouts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/staking.Payout"
                    }
                },
                "refund": {
                    "$ref": "#/definitions/transfer.Instruction"
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "transfer.Instruction": {
            "type": "object",
            "properties": {
                "attempts": {
                    "type": "integer"
                },
                "contract": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "from": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "reward",
                        "refund"
                    ]
                },
                "lastError": {
                    "type": "string"
                },
                "memo": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "sent",
                        "failed"
                    ]
                },
                "to": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "retrive token from #/auth/post_auth_refresh or the signer tool and apply with ` + "`" + `bearer {token}` + "`" + `",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Staking API",
	Description:      "Tiered staking and reward engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
