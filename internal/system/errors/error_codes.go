/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package errors

const errorPrefix = "IRC-"

var (
	// Server error codes

	STORE_OPEN = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to open the local profile store.",
	}

	STORE_READ = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while reading the local profile store.",
	}

	STORE_WRITE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while writing to the local profile store.",
	}

	REQUEST_FAILED = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Request to the registration backend failed.",
	}

	RESPONSE_DECODE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while decoding backend response.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while marshalling JSON.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while un-marshalling JSON.",
	}

	CATALOG_FETCH = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching catalog.",
	}

	BADGE_SIGN = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while signing badge payload.",
	}

	DEVICE_ID_GEN = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while generating device identifier.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	SEND_CODE_FAILED = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Sending the verification code failed.",
	}

	VERIFY_CODE_FAILED = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Verifying the code failed.",
	}

	CODE_NOT_SENT = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "No verification code was requested.",
		Description: "A code must be sent to the phone number before it can be verified.",
	}

	INVALID_CODE_FORMAT = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "codeInvalid",
		Description: "The verification code must be 4 to 6 digits.",
	}

	INVALID_PHONE = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "phoneInvalid",
		Description: "The phone number is not a valid international number.",
	}

	REGISTER_FAILED = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Registration failed.",
	}

	UPDATE_FAILED = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Registration update failed.",
	}

	BADGE_NOT_APPROVED = ErrorMessage{
		Code:        errorPrefix + "11009",
		Message:     "Badge issuance rejected.",
		Description: "A badge can only be issued for an approved registration.",
	}

	BADGE_INVALID = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Badge payload is not valid.",
	}
)
