package admin

import "github.com/mericlorris-hash/vanilio/pkg/merge"

// The order selection is split into field groups which are fetched as
// independent paginated queries so no single query exceeds the API's cost
// budget; pkg/merge reassembles the partial nodes per order id.

const orderFieldsBasic = `
	id app { id } clientIp cancelReason cancelledAt closedAt confirmationNumber confirmed email createdAt
	discountCodes displayFinancialStatus displayFulfillmentStatus edited estimatedTaxes
	customerJourneySummary { lastVisit { id landingPage landingPageHtml occurredAt referralCode referralInfoHtml
	referrerUrl source sourceDescription sourceType utmParameters { campaign content medium source term } } }
	name note statusPageUrl paymentGatewayNames phone presentmentCurrencyCode processedAt sourceIdentifier
	sourceName tags taxExempt
	taxLines { channelLiable rate ratePercentage source title priceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } }
	taxesIncluded test
	totalCashRoundingAdjustment { paymentSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } refundSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } }
	totalDiscountsSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	totalPriceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	totalOutstandingSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	totalShippingPriceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	totalTaxSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	totalTipReceivedSet { shopMoney { currencyCode amount } presentmentMoney { amount currencyCode } }
	totalWeight updatedAt unpaid
	shippingLines(first: 10) { nodes { id carrierIdentifier code custom source
	discountedPriceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	shippingRateHandle title
	taxLines { title source ratePercentage rate priceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } }
	originalPriceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } isRemoved
	discountAllocations { allocatedAmountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } } } }`

const orderFieldsCustomer = `
	id billingAddress { address1 address2 city company coordinatesValidated country countryCodeV2 firstName
	formatted(withCompany: false, withName: false) formattedArea id lastName latitude longitude name phone
	province provinceCode timeZone zip validationResultSummary } currencyCode
	customer { id createdAt updatedAt state lastName firstName note verifiedEmail multipassIdentifier email
	taxExempt tags defaultAddress { address1 address2 city company country countryCodeV2 firstName id lastName
	latitude longitude name province provinceCode timeZone validationResultSummary zip } }
	shippingAddress { address1 address2 city company coordinatesValidated countryCodeV2 firstName formattedArea
	id lastName latitude longitude name phone province provinceCode timeZone validationResultSummary zip country }`

const orderFieldsLineItems = `
	id lineItems(first: 25) { nodes { id currentQuantity fulfillmentStatus fulfillableQuantity
	fulfillmentService { serviceName } isGiftCard name
	originalTotalSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	originalUnitPriceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	requiresShipping product { id } quantity variant { id sku taxable title }
	taxLines(first: 25) { channelLiable price priceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } rate ratePercentage source title }
	taxable title
	discountAllocations { allocatedAmountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } }
	duties { countryCodeOfOrigin harmonizedSystemCode id
	price { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	taxLines { priceSet { shopMoney { amount currencyCode } presentmentMoney { amount currencyCode } } rate ratePercentage source title } } } }`

const orderFieldsRefunds = `
	id refunds(first: 25) { createdAt id note legacyResourceId
	orderAdjustments(first: 50) { nodes { id reason
	taxAmountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	amountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } } }
	duties { amountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	originalDuty { countryCodeOfOrigin harmonizedSystemCode id
	price { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	taxLines { channelLiable rate ratePercentage source title priceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } } } }
	refundLineItems(first: 25) { nodes { id restocked restockType quantity location { id }
	subtotalSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	totalTaxSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	lineItem { id name quantity sku title currentQuantity requiresShipping } } }
	refundShippingLines(first: 50) { nodes { id shippingLine { id code carrierIdentifier title
	taxLines { channelLiable rate ratePercentage source title priceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } }
	source shippingRateHandle custom
	discountAllocations { allocatedAmountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } } }
	subtotalAmountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	taxAmountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } } }
	transactions(first: 25) { nodes { id gateway kind authorizationCode createdAt accountNumber
	amountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	amountV2 { amount currencyCode } errorCode paymentId paymentMethod processedAt status
	parentTransaction { id } receiptJson test
	paymentDetails { ... on CardPaymentDetails { avsResultCode } } } } }`

const orderFieldsTransactions = `
	id transactions(first: 50) { accountNumber amountV2 { amount currencyCode }
	amountSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	authorizationCode authorizationExpiresAt createdAt errorCode
	fees { id rate rateName taxAmount { amount currencyCode } type amount { amount currencyCode } }
	formattedGateway gateway id kind manualPaymentGateway manuallyCapturable maximumRefundable multiCapturable
	parentTransaction { id gateway kind status }
	paymentId processedAt receiptJson settlementCurrency settlementCurrencyRate status test
	totalUnsettledSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } }
	paymentIcon { id src originalSrc } }`

const orderFieldsFulfillment = `
	id fulfillments(first: 20) { createdAt deliveredAt displayStatus id
	location { id name createdAt updatedAt fulfillmentService { callbackUrl handle id inventoryManagement serviceName trackingSupport type } }
	originAddress { address1 address2 city countryCode provinceCode zip }
	requiresShipping updatedAt status totalQuantity estimatedDeliveryAt
	service { handle serviceName trackingSupport type } trackingInfo { company number url }
	fulfillmentLineItems(first: 20) { nodes { id quantity lineItem { currentQuantity
	fulfillmentService { serviceName id handle type } fulfillmentStatus isGiftCard name product { id }
	variant { id sku } vendor variantTitle
	taxLines(first: 50) { channelLiable priceSet { presentmentMoney { amount currencyCode } shopMoney { amount currencyCode } } rate ratePercentage source title }
	duties { countryCodeOfOrigin harmonizedSystemCode id }
	discountAllocations { allocatedAmountSet { presentmentMoney { currencyCode amount } shopMoney { amount currencyCode } } } } } } }`

const orderFieldsReturnsAndRisks = `
	id returns(first: 10) { nodes { id returnLineItems(first: 10) { nodes { quantity refundableQuantity
	refundedQuantity returnReason returnReasonNote
	... on ReturnLineItem { id fulfillmentLineItem { id lineItem { id } } } } } } }
	risk { assessments { riskLevel facts { description sentiment } provider { id title webhookApiVersion } } recommendation }`

const orderFieldsFulfillmentOrders = `
	id fulfillmentOrders(first: 20) { nodes { orderId orderName status
	lineItems(first: 25) { nodes { id lineItem { id } } }
	assignedLocation { location { id } } } }`

// OrderFieldGroups returns the field groups an order is assembled from.
func OrderFieldGroups() []merge.FieldGroup {
	return []merge.FieldGroup{
		{Name: "basic", Fields: orderFieldsBasic},
		{Name: "customer_data", Fields: orderFieldsCustomer},
		{Name: "line_items", Fields: orderFieldsLineItems},
		{Name: "refunds", Fields: orderFieldsRefunds},
		{Name: "transactions", Fields: orderFieldsTransactions},
		{Name: "fulfillment", Fields: orderFieldsFulfillment},
		{Name: "returns_and_risks", Fields: orderFieldsReturnsAndRisks},
		{Name: "fulfillment_orders", Fields: orderFieldsFulfillmentOrders},
	}
}
