package models

type ContractType string

const (
	ContractCDI   ContractType = "CDI"
	ContractCDD   ContractType = "CDD"
	ContractExtra ContractType = "EXTRA"
)

var contractTypeHumanName = map[ContractType]string{
	ContractCDI:   "Contrat à durée indéterminée",
	ContractCDD:   "Contrat à durée déterminée",
	ContractExtra: "Contrat d'extra",
}

func (t ContractType) ToHuman() string {
	if human, exist := contractTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t ContractType) IsValid() bool {
	switch t {
	case ContractCDI, ContractCDD, ContractExtra:
		return true
	}
	return false
}

type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusTerminated ContractStatus = "terminated"
)
