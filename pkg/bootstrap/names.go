package bootstrap

import "strings"

// Word lists for generated company names and transaction descriptions.

var companyStems = []string{
	"Nova", "Vertex", "Blue Ridge", "Harbor", "Summit",
	"Cascade", "Meridian", "Pioneer", "Atlas", "Lakeside",
	"Crestline", "Beacon", "Redwood", "Ironwood", "Northgate",
}

var companySuffixes = []string{
	"Group", "Labs", "Holdings", "Partners", "Systems",
	"Services", "Media", "Logistics", "Supply Co", "Energy",
}

var descriptionVerbs = []string{
	"Payment for", "Refund for", "Invoice for", "Split for", "Settled",
}

var descriptionSubjects = []string{
	"weekend groceries", "shared dinner", "monthly subscription",
	"concert tickets", "train fare", "utility bill", "online order",
	"coffee run", "gym membership", "holiday booking",
}

// companyName draws a plausible company name for the payee pool.
func (b *Bootstrapper) companyName() string {
	stem := companyStems[b.rng.Intn(len(companyStems))]
	suffix := companySuffixes[b.rng.Intn(len(companySuffixes))]
	return stem + " " + suffix
}

// description draws a short free-text line for a generated transaction.
func (b *Bootstrapper) description() string {
	verb := descriptionVerbs[b.rng.Intn(len(descriptionVerbs))]
	subject := descriptionSubjects[b.rng.Intn(len(descriptionSubjects))]
	return strings.TrimSpace(verb + " " + subject)
}
