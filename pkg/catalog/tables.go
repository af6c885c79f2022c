package catalog

// Table groups. Purely documentation: the merged catalog is flat and group
// identity is only surfaced by listings.
const (
	GroupCoreDocument = "core-document"
	GroupHybrid       = "hybrid"
	GroupAggregate    = "aggregate"
	GroupSplitHybrid  = "split-hybrid"
	GroupHistory      = "history"
)

// coreDocumentTables: material document header and item tables merged into
// the single MATDOC table in S/4HANA.
var coreDocumentTables = map[string]Entry{
	"MKPF": {Replacement: "MATDOC", Group: GroupCoreDocument,
		Note: "Header data no longer stored separately. Still exists as DDIC object, but only read via CDS view NSDM_DDL_MKPF."},
	"MSEG": {Replacement: "MATDOC", Group: GroupCoreDocument,
		Note: "Item + header + attributes merged. Proxy CDS: NSDM_DDL_MSEG."},
}

// hybridTables: master data plus quantity tables redirected to CDS views.
var hybridTables = map[string]Entry{
	"MARC": {Replacement: "NSDM_V_MARC", Group: GroupHybrid, Note: "Plant Data for Material now redirected to CDS views."},
	"MARD": {Replacement: "NSDM_V_MARD", Group: GroupHybrid, Note: "Storage location data no longer persisted."},
	"MCHB": {Replacement: "NSDM_V_MCHB", Group: GroupHybrid, Note: "Batch stock quantities derived from MATDOC."},
	"MKOL": {Replacement: "NSDM_V_MKOL", Group: GroupHybrid, Note: "Special stocks from vendor redirected."},
	"MSLB": {Replacement: "NSDM_V_MSLB", Group: GroupHybrid, Note: "Special stocks with vendor derived from MATDOC."},
	"MSKA": {Replacement: "NSDM_V_MSKA", Group: GroupHybrid, Note: "Sales order stock redirected."},
	"MSPR": {Replacement: "NSDM_V_MSPR", Group: GroupHybrid, Note: "Project stock aggregated on the fly."},
	"MSKU": {Replacement: "NSDM_V_MSKU", Group: GroupHybrid, Note: "Special stocks with customer from MATDOC."},
}

// aggregateTables: aggregation totals replaced by on-the-fly CDS views.
var aggregateTables = map[string]Entry{
	"MSSA": {Replacement: "NSDM_V_MSSA", Group: GroupAggregate, Note: "Customer order totals replaced by CDS view."},
	"MSSL": {Replacement: "NSDM_V_MSSL", Group: GroupAggregate, Note: "Special stocks with vendor totals replaced by CDS view."},
	"MSSQ": {Replacement: "NSDM_V_MSSQ", Group: GroupAggregate, Note: "Project stock totals replaced by CDS view."},
	"MSTB": {Replacement: "NSDM_V_MSTB", Group: GroupAggregate, Note: "Stock in transit replaced by CDS view."},
	"MSTE": {Replacement: "NSDM_V_MSTE", Group: GroupAggregate, Note: "Stock in transit (SD Doc) replaced by CDS view."},
	"MSTQ": {Replacement: "NSDM_V_MSTQ", Group: GroupAggregate, Note: "Stock in transit for project replaced by CDS view."},
}

// splitHybridTables: DIMP tables split into MATDOC stock plus _MD master data.
var splitHybridTables = map[string]Entry{
	"MCSD": {Replacement: "NSDM_V_MCSD", Group: GroupSplitHybrid, Note: "Customer Stock split: stock -> MATDOC, master -> MCSD_MD."},
	"MCSS": {Replacement: "NSDM_V_MCSS", Group: GroupSplitHybrid, Note: "Customer Stock Total split: stock -> MATDOC, master -> MCSS_MD."},
	"MSCD": {Replacement: "NSDM_V_MSCD", Group: GroupSplitHybrid, Note: "Customer Stock with Vendor split into MATDOC + MSCD_MD."},
	"MSCS": {Replacement: "NSDM_V_MSCS", Group: GroupSplitHybrid, Note: "Cust. Stock with Vendor Total split into MATDOC + MSCS_MD."},
	"MSFD": {Replacement: "NSDM_V_MSFD", Group: GroupSplitHybrid, Note: "Sales Order Stock with Vendor split into MATDOC + MSFD_MD."},
	"MSFS": {Replacement: "NSDM_V_MSFS", Group: GroupSplitHybrid, Note: "Sales Order Stock with Vendor Total split into MATDOC + MSFS_MD."},
	"MSID": {Replacement: "NSDM_V_MSID", Group: GroupSplitHybrid, Note: "Vendor Stock split into MATDOC + MSID_MD."},
	"MSIS": {Replacement: "NSDM_V_MSIS", Group: GroupSplitHybrid, Note: "Vendor Stock Total split into MATDOC + MSIS_MD."},
	"MSRD": {Replacement: "NSDM_V_MSRD", Group: GroupSplitHybrid, Note: "Project Stock with Vendor split into MATDOC + MSRD_MD."},
	"MSRS": {Replacement: "NSDM_V_MSRS", Group: GroupSplitHybrid, Note: "Project Stock with Vendor Total split into MATDOC + MSRS_MD."},
}

// historyTables: period-close history tables redirected to CDS views.
var historyTables = map[string]Entry{
	"MARCH": {Replacement: "NSDM_V_MARCH", Group: GroupHistory, Note: "MARC History redirected to CDS."},
	"MARDH": {Replacement: "NSDM_V_MARDH", Group: GroupHistory, Note: "MARD History redirected to CDS."},
	"MCHBH": {Replacement: "NSDM_V_MCHBH", Group: GroupHistory, Note: "MCHB History redirected to CDS."},
	"MKOLH": {Replacement: "NSDM_V_MKOLH", Group: GroupHistory, Note: "MKOL History redirected to CDS."},
	"MSLBH": {Replacement: "NSDM_V_MSLBH", Group: GroupHistory, Note: "MSLB History redirected to CDS."},
	"MSKAH": {Replacement: "NSDM_V_MSKAH", Group: GroupHistory, Note: "MSKA History redirected to CDS."},
	"MSSAH": {Replacement: "NSDM_V_MSSAH", Group: GroupHistory, Note: "MSSA History redirected to CDS."},
	"MSPRH": {Replacement: "NSDM_V_MSPRH", Group: GroupHistory, Note: "MSPR History redirected to CDS."},
	"MSSQH": {Replacement: "NSDM_V_MSSQH", Group: GroupHistory, Note: "MSSQ History redirected to CDS."},
	"MSKUH": {Replacement: "NSDM_V_MSKUH", Group: GroupHistory, Note: "MSKU History redirected to CDS."},
	"MSTBH": {Replacement: "NSDM_V_MSTBH", Group: GroupHistory, Note: "MSTB History redirected to CDS."},
	"MSTEH": {Replacement: "NSDM_V_MSTEH", Group: GroupHistory, Note: "MSTE History redirected to CDS."},
	"MSTQH": {Replacement: "NSDM_V_MSTQH", Group: GroupHistory, Note: "MSTQ History redirected to CDS."},
	"MCSDH": {Replacement: "NSDM_V_MCSDH", Group: GroupHistory, Note: "MCSD History redirected to CDS."},
	"MCSSH": {Replacement: "NSDM_V_MCSSH", Group: GroupHistory, Note: "MCSS History redirected to CDS."},
	"MSCDH": {Replacement: "NSDM_V_MSCDH", Group: GroupHistory, Note: "MSCD History redirected to CDS."},
	"MSFDH": {Replacement: "NSDM_V_MSFDH", Group: GroupHistory, Note: "MSFD History redirected to CDS."},
	"MSIDH": {Replacement: "NSDM_V_MSIDH", Group: GroupHistory, Note: "MSID History redirected to CDS."},
	"MSRDH": {Replacement: "NSDM_V_MSRDH", Group: GroupHistory, Note: "MSRD History redirected to CDS."},
}

// Default returns the built-in MM-IM simplification catalog: all five table
// groups merged into one flat vocabulary.
func Default() *Catalog {
	return New(
		coreDocumentTables,
		hybridTables,
		aggregateTables,
		splitHybridTables,
		historyTables,
	)
}
