package main

// Label catalog for generated documents and progress step keys.
// Portuguese is the primary language; English is available on request.
// Unknown languages fall back to Portuguese, unknown keys to the key
// itself.
var docStrings = map[string]map[string]string{
	"pt": {
		"doc.common.client":          "Cliente",
		"doc.common.generation_date": "Data de Geração",
		"doc.common.boot_volume":     "Boot Volume",
		"doc.common.volume_group":    "Volume Group",
		"doc.common.managed_by_vg":   "Gerenciado por VG",
		"doc.headings.vpn_phase1":    "Fase 1 (IKE)",
		"doc.headings.vpn_phase2":    "Fase 2 (IPSec)",
		"doc.type.full_infra":        "Documentação de Infraestrutura",
		"doc.type.new_host":          "Documentação de Novo Host",
		"doc.type.kubernetes":        "Documentação de Kubernetes (OKE)",
		"doc.type.default":           "Documentação Técnica",
		"doc.identifier.full_infra":  "Infraestrutura",
		"doc.identifier.new_host":    "NovoHost",
		"doc.identifier.kubernetes":  "Kubernetes",
		"doc.identifier.default":     "Geral",
		"phase.instances":            "Instâncias",
		"phase.volume_groups":        "Grupos de Volumes",
		"phase.vcns":                 "Redes (VCNs)",
		"phase.connectivity":         "Conectividade (DRG/CPE)",
		"phase.ipsec":                "Conexões VPN (IPSec)",
		"phase.load_balancers":       "Load Balancers",
		"phase.kubernetes":           "Kubernetes (OKE)",
		"phase.done":                 "Concluído",
	},
	"en": {
		"doc.common.client":          "Client",
		"doc.common.generation_date": "Generation Date",
		"doc.common.boot_volume":     "Boot Volume",
		"doc.common.volume_group":    "Volume Group",
		"doc.common.managed_by_vg":   "Managed by VG",
		"doc.headings.vpn_phase1":    "Phase 1 (IKE)",
		"doc.headings.vpn_phase2":    "Phase 2 (IPSec)",
		"doc.type.full_infra":        "Infrastructure Documentation",
		"doc.type.new_host":          "New Host Documentation",
		"doc.type.kubernetes":        "Kubernetes (OKE) Documentation",
		"doc.type.default":           "Technical Documentation",
		"doc.identifier.full_infra":  "Infrastructure",
		"doc.identifier.new_host":    "NewHost",
		"doc.identifier.kubernetes":  "Kubernetes",
		"doc.identifier.default":     "General",
		"phase.instances":            "Instances",
		"phase.volume_groups":        "Volume Groups",
		"phase.vcns":                 "Networks (VCNs)",
		"phase.connectivity":         "Connectivity (DRG/CPE)",
		"phase.ipsec":                "VPN Connections (IPSec)",
		"phase.load_balancers":       "Load Balancers",
		"phase.kubernetes":           "Kubernetes (OKE)",
		"phase.done":                 "Done",
	},
}

// translate resolves a document label for the given language.
func translate(key, lang string) string {
	strings, ok := docStrings[lang]
	if !ok {
		strings = docStrings["pt"]
	}
	if s, ok := strings[key]; ok {
		return s
	}
	if s, ok := docStrings["pt"][key]; ok {
		return s
	}
	return key
}
