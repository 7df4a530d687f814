package domain

// Query parameter carrying the case identifier on the inventory request
const QueryParamCase = "case"

// Route names
const RouteNameHome = "home"
