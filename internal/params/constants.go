package params

// Domain table for the largest supported instance. Entries are regular
// (non-Montgomery) little-endian limbs and are converted once by table().
var rawAffine = [MaxRounds][MaxWidth][4]uint64{
	{
		{0x0d77bf1f2c7a25de, 0x41b6a9f1f2d3ce1e, 0xe7ccead3ee071327, 0x665be182465de62c},
		{0x3ab6647751ad5f24, 0xccac0707c26e7621, 0x5d588909c4b3a013, 0x02e898903ca1ae10},
		{0x60f1034cf6610885, 0xd0c26edee904fb2c, 0x5b3c9e228738cf4d, 0x3b204e8f0c66a9d0},
		{0x3a726033a3654a40, 0x3a34c5f2ec979b1c, 0x55e7396420bd5701, 0x57e37d39ffc0a6b4},
		{0x6b0a4c8dda8ba104, 0x2322cf05f5347534, 0xd222bd21ba4e2d53, 0x2453a256007730fb},
		{0x823c3636d6993eb0, 0x588d25d1d4396b2e, 0xc2f0164f2d0ddcf2, 0x5d5a0da57a1288fe},
		{0x1ba54ab628170b2c, 0x43811f0a8a0155f6, 0xa8d6592f50aecf45, 0x3c3e982d6c17fdb1},
		{0x7f70f92862220332, 0xfa55befc70e060e2, 0xe0aadaa06e2fb08f, 0x4ba3e23f9bcd6a49},
	},
	{
		{0x11942e01531d6f6a, 0x00f8453c8cd06048, 0xe06d8386532af226, 0x5295321e892db852},
		{0x602f907536dd86b9, 0x91ea0e21a271d28d, 0x38028f706733eb23, 0x5a3b76dd8e1a8c0a},
		{0x6b4f2144b80b8291, 0x1996c90d8a431606, 0x4846b2796e69be67, 0x2cd7c1962a28f854},
		{0x22402220db261460, 0x0a70ec3539c5f546, 0xe589a0bae712e82e, 0x44ea8ac78b072957},
		{0xbc896bc24b214a9d, 0xc603fbef23c189d9, 0x3608966c0686f4aa, 0x5f4340f5dc352fb3},
		{0x6ba8725636c5795e, 0x526902abe8568c7b, 0xb8ac3ed0b853371f, 0x6d1a449b3f491a54},
		{0xeb9433df22b242d6, 0xcf1ce2ac15680e3a, 0x7582f1047de0279f, 0x3c41750d856007eb},
		{0x16a75f9d3ffba3b5, 0x4a9dd88fae98abbf, 0x59309ad3c68e6832, 0x35057c21a21edcfd},
	},
	{
		{0x3154791fe8225d50, 0x5e3f77eb8676fbe1, 0x00e04932fd61eaa0, 0x3a149b89661dafd9},
		{0x7107b2b00494d9aa, 0x7205da2be0a9e023, 0x866cc903cacda05f, 0x5454d08d250ddd56},
		{0xb354fab13dfc412a, 0xda43f3b525abb8f7, 0x227d3c6ad9996478, 0x5a58163b008ab3af},
		{0x68a269367bc2f287, 0xfffd82e1953cae95, 0x4424a7e62fdc576a, 0x6e916f679fe7c3e6},
		{0x28d40e2e993a27a4, 0x2d6d09dd2abf3041, 0x80a6391c5fbb038c, 0x51a106581b8fefb1},
		{0xdc7c94404fc71ce6, 0x6fc9494042d37695, 0x0d6833c88f2121c6, 0x5b08b28934a3ed66},
		{0x4a4d232492d21c76, 0x1f558eeb999c96cb, 0xecd9d99c068ce9c9, 0x51b24888df044174},
		{0x2552b499bf8e5610, 0xb5f2d34f217fd304, 0x50217ab0773a301a, 0x1711eaf52246e8c4},
	},
	{
		{0x3191c35f692eb71e, 0x8af0fd665557b2b8, 0x2792adeebc922e2d, 0x68c62bb7a92b297b},
		{0x98f289d69f7ba0ae, 0x2c487cbc90bd60d3, 0xeb69f1f53fc4d647, 0x3f030972990363cc},
		{0x6e5485695dbccba8, 0x404060411d374b9f, 0xf680e2d3e7d546fd, 0x3fd639a45c26cc28},
		{0x1b62044c79004ff3, 0x3863b356e086bda1, 0xf8c4d8af62626427, 0x17de517283a28e01},
		{0xc4f1d9287b9771a7, 0x4c88f14ced694437, 0xed6585025d70f9a9, 0x0f4364f3cf5e66cf},
		{0xef62d83f91acf975, 0xdbdd93b529ee3b8a, 0x5aa94a8772323670, 0x18cf10208ad64e48},
		{0xc4d543452dec86f6, 0x4f2a0ff325904cd5, 0x4559b965852c7966, 0x6fd772e9956c54d0},
		{0xc70a0aaa2c1e1575, 0xba6cf67c0ba5527b, 0x2cf13d12cd12f68d, 0x564503bc605d0559},
	},
	{
		{0x7d16d9d835482026, 0xc70e812bf995edee, 0xf8ed246cbf13a434, 0x4d7eb7e1ba6fefb0},
		{0x7e3fa0fc02059a87, 0x9bbf1f8f26a81311, 0x0e32822ebc450383, 0x6bc7230f6da13245},
		{0x7ded32662cee0859, 0xaab24847e5195f4f, 0x40fee9b65a5c2453, 0x60610ab73ff036ad},
		{0xd26b1dbb6d6eabc2, 0x67b58b3b2786163c, 0x708e4882f9e47718, 0x0b5a6f6119e4de07},
		{0x589ab050fe85ff6d, 0x485a10f003badfa8, 0xe5e124744b4c50b3, 0x62f4e22dbbf48ce6},
		{0x24471ea275877483, 0x17c5e804b1ff9d91, 0x9bbd8e83bc2dedb9, 0x11619d53a31d7666},
		{0x368182898c325d37, 0xa7d0604ead756fd3, 0x64fbd89f975d5f46, 0x617f2d56c172771c},
		{0x43ed1fcdf3df901d, 0xdf5bfb2b9be22a18, 0x3d64959cbf12a131, 0x2b653c873c7a9b27},
	},
	{
		{0x8cd27e97e040018b, 0xe00485a65e05d2c3, 0x8a25ac263ece39cc, 0x06f005bd10a2d0e6},
		{0xb1eaaaca69da6d2b, 0x2bb6c7de007a1e62, 0x44e29357aac87238, 0x5171bf678c8fa001},
		{0xdba78bf22cd7aba8, 0xc53ffe40e0eeaae1, 0x928d8c46e2ce7988, 0x3cdf55c2c1f088eb},
		{0x826a6f82d7f4485a, 0x5bdaa705b811b79b, 0x2acd71cde3fcfe8a, 0x272cce385d81b111},
		{0x05f5de19d754d877, 0x5cbd29f84f7ea1c7, 0xc8ec25662975d807, 0x59e647cbb9a2b2ac},
		{0xbbc582201896b214, 0x29f137dfb8211cda, 0xecf333268b5b5e99, 0x5dd89130262628dc},
		{0xd42db9dcc7ab2685, 0xb7de4c52ec2af0ac, 0xb628c21611d0a587, 0x48e6433c2c926be0},
		{0x670eea500fb74d9a, 0x0ca083ab4658bb73, 0x005e07447df8907c, 0x64e39a3649953031},
	},
}

var rawG = [MaxRounds][MaxWidth - 1][2][4]uint64{
	{
		{{0x70a901c65fccf40a, 0xfbb514ee79330286, 0x9b7bbfdc4119ab0b, 0x36206215dae33b32}, {0xcb283a70b769ed62, 0x8b4778a5c268bece, 0xe9cd9242af2c76fe, 0x63c03f7b1b645b36}},
		{{0xc9965d286eba85c0, 0x03f7044c8265a4b4, 0x71ec5e434fe00539, 0x534c1a6f48c6ef4a}, {0x1b6c3c7ca9e9aacd, 0x9683cdd30288f9a7, 0xbf097a1b6368c924, 0x2d432f624ed61412}},
		{{0x6baa506ddeed2ba6, 0xfc4077811e77e1ef, 0x7bf723c6b1fdd79e, 0x5ab63f9f309f6702}, {0xfbcfa2fd734aa2f0, 0x7cfbd4ab4fad314c, 0xf029f91a7761400a, 0x37ce7f19f9bf6db7}},
		{{0xba6227eb612a2647, 0x57ffa899c231b23f, 0xff4ac1e5f4147dec, 0x3e8e7e4f2edf9419}, {0xb837b1935957a1e4, 0xc739d60ab4b4473d, 0xe30391b9e3241df1, 0x3a5f5235390031bd}},
		{{0xb3fccdeb5762301d, 0xc4dd015f0775c794, 0x2e951062ff4f448d, 0x001750e34ea2c8c7}, {0x49654567a46db8b8, 0x6d1d43d44de05fe1, 0xf274b5dbaa60a706, 0x514f5212e5712bbf}},
		{{0xdcc9b964d98c8f77, 0xdca5c58af8194dd5, 0xad70e507760d7d18, 0x0be5a611cdfbb23f}, {0x17f5224766f22b21, 0xc491b758568cfbc1, 0x266805b7eb33a4a4, 0x32812e61f783ac70}},
		{{0x944913970ee68d39, 0x40898d946da3e02b, 0xdb822a8ddf784a0e, 0x5ea4562a67d11d9b}, {0xd6dd08b1e8cd591d, 0x716c96c7b98ebd06, 0x750735defef422d1, 0x205359ff66710154}},
	},
	{
		{{0x84790f1c58611dcb, 0x8350e6aa22182b76, 0x56514cd39580773f, 0x172b97b9fc8b5baf}, {0xcb8df5f4b435c3a7, 0xd3a5d3bf1f36ad50, 0xacf0c85a419b991f, 0x2415f1d49939f315}},
		{{0xbb11af5b355ee9a4, 0x9fe5a2974add0bb7, 0xeaa6f93ead5ef76c, 0x52308faf9d0c5b60}, {0xb20eaea201afc990, 0x66c47d173b43f448, 0x65e02c8aecbfc65d, 0x4856ca0b14f70b51}},
		{{0x5267479eda2d3c41, 0x66ea5ff1c7a28411, 0xf8c580e72675ea25, 0x559144cfe600d1b4}, {0xad90357849734dcb, 0x857016c2e133b970, 0x41f9dc3b401ad4e1, 0x3dc60125f4b194ba}},
		{{0xd6ea114720154255, 0x6a3bc29feb49b674, 0xbafa49bd84b9f1b8, 0x1bb6db7543f4d506}, {0xf3fd7a4de620fc9a, 0x0f7250b445143559, 0x332907f5169c209f, 0x66e987fe0b92d3ec}},
		{{0xeb72c63f94da56f9, 0xc995d46a36e05e06, 0x078f1b28ad109bcc, 0x3d69d077a52fefc9}, {0x7311affe897ef62c, 0x4255a1c86a0c17fb, 0xe17c44644f2255db, 0x2a2f7bcdff52cc2b}},
		{{0xa73065053e9b7d16, 0xbef26241bb91efb4, 0x58cf7ce7b99e1971, 0x17ca9f0a461fe1c5}, {0xd1acc8dfffe102eb, 0x8d785d6e19e2ae38, 0x9b1f10dadba37aa1, 0x33ddc63adafc8791}},
		{{0x2a7a31c6ca2d79a8, 0x6e744d1aca8a1e40, 0x6a55dd182055f4b8, 0x49ae21f624847ae5}, {0x278a31147e72fb35, 0x319ce9963be9fe09, 0x104fd27ab8e97373, 0x70872cfc10a538ba}},
	},
	{
		{{0x02e3f593b16f4f14, 0x252ffdf486c794a4, 0xa6b92fa14a0224df, 0x2b6e78823a48e278}, {0xd0a12e332b4afe58, 0xe07147a5c906e3d5, 0x4980dfe229f059e5, 0x6ddebeb9e1b88a6f}},
		{{0x58dee57794c5ea8b, 0x1a1f1237577ecd21, 0x952864dd1731309e, 0x495cbea05279ddb5}, {0x23ef2dafd8a41b6d, 0x0c61d6e31bf894fe, 0x7f5b0b3662631601, 0x6da27727d47ca93e}},
		{{0x50d70a408dd68d52, 0xe4608f952ff10045, 0x3330b6e0d4c1dff0, 0x604568b073839445}, {0x6dee30da87dea30e, 0x4c46faae8f855920, 0x05f2a36da812549d, 0x473ab5f046f1fb9c}},
		{{0xd11c2f538d8f0f51, 0x08563966555d7bf6, 0x1611b6b1d3a80789, 0x0d720d96df94c89a}, {0xe5a44432a3bf35c0, 0x922a92ce5ba42827, 0x2f40ede1b3708e5d, 0x4faa277b4144ed63}},
		{{0xf8a964638413116f, 0x43f02021b2a3809d, 0x4fd8477a32b19171, 0x0a526777e9a8a2f2}, {0x605d09a9e8fff249, 0xc4ab85c1d0d76675, 0x8e409457464033a3, 0x58503857dc9b7d8e}},
		{{0x9128ec7200b48ff7, 0x177f099183e7772f, 0xcf69fa4337e80309, 0x12f87f4629ad9809}, {0x5aa83dc5cfab4c3b, 0xac6fef4419e11f0f, 0xb7264211cea0701f, 0x34b8dede23a2a005}},
		{{0x1327fd44d4501931, 0x4adfe43aa6487d4a, 0x5aef9f15404e45c4, 0x20bacbe6bdbd2576}, {0xd004eb32392c55b4, 0x0c6081a0de5e03bf, 0xe0be72722cf24017, 0x3b30037efb46804b}},
	},
	{
		{{0x582ab18d6e85fd63, 0x6a4759ee931b4398, 0x5b3c6d988b62c8f7, 0x6bcf8707cb756b7b}, {0x6a242a9dee4e163e, 0x27ee5737f6c87706, 0x5a2dddba62b8653d, 0x6169817d25dd4ccb}},
		{{0xecb3dd23b150db04, 0x481c5657bc393642, 0xabbffd5372695298, 0x322248c1b10433fd}, {0x0ef0304378dc280d, 0xfecee43451e84790, 0x60a5ce7bbd683936, 0x3a08bbc33946fa45}},
		{{0xc6a879d07d631e48, 0x89aad70f36515ace, 0x8068ed13c60e78d3, 0x56c2ef42a5c21891}, {0x3afd0d6cb4f04011, 0x445e0e9f67c0037f, 0xe58a3f7354e95a48, 0x6e4f2ae33ff8a98c}},
		{{0xb89c3b21e388b329, 0x4423a2cd7b69ab52, 0x51d0f77ff11d2fd2, 0x5ce09fcaae5fb928}, {0x61467b8afc29be67, 0xf9a2ab20c4718932, 0x996258dbe3190964, 0x5f2d52daefefa801}},
		{{0xde77ab9eabb6844c, 0xae6b4311685c4d12, 0x55d9af4cdca31425, 0x62b1b87ca02a7eb7}, {0x58b0d7e77087faad, 0x39459723da20c522, 0x2a773aa69e7581b3, 0x3f8489e1803c0934}},
		{{0xe15e4cee5d9f542a, 0x61f725d80f57a7fa, 0x33263709b4292ae5, 0x304610ee7cc87251}, {0x9707f2b12d9704cb, 0x81db039b604f64de, 0xc2a9cdc21a5072b1, 0x448c5a9c449e7630}},
		{{0x25bb8d4bf491ce10, 0x7e6fbfd0c32834ba, 0x69fdc3b8ae2ca78b, 0x1b2ac528b7f4f37e}, {0x4b8c8e2afd0ae41f, 0xa1f6c57fed4a24d3, 0x1bb868db45feb629, 0x6ecefdad2b90a808}},
	},
	{
		{{0xac2bf776eed19ac4, 0x8264cfc19ff1b697, 0x2dcb4eadb002bf68, 0x2de55a9d8e0204a6}, {0x6ca49072ad58e67d, 0xbb28ed607ed761d4, 0x9c904f23729068c1, 0x06e38928ceb28979}},
		{{0x6d1cce89a5e0ab7b, 0xd42ec21605fd95f5, 0xc2f94de4d51ffdc3, 0x1ba9e47dc2cf5cf8}, {0x95624e1539968cf8, 0xd3f2c4b2980feb86, 0x23689c5d4055671b, 0x3ea7336a2a4f6fcb}},
		{{0xb1b4443300d0102a, 0x6b685056808d6e57, 0x3021ffcdfb4153ef, 0x57bc7ed1807271de}, {0x1ef188fcf8254e3f, 0x580ff3fdafeafad3, 0xeec4f78c6edd6223, 0x35ea3a18d679dff4}},
		{{0xa8dca05ef39c5189, 0xcc7b931826c83316, 0x57dbb352c7e3b8d3, 0x229521be0d97467f}, {0x9b05ce3457452bc3, 0x70a6fe51f79d3c2a, 0x5e7e634a6b7e6135, 0x12ccebf819d7d28e}},
		{{0x30ed317ee2d93a43, 0x7be6ae2e6b654636, 0x01a77e53de588b18, 0x65fa1b68f5ec3873}, {0xc192f2c82a03a98d, 0x01264aa8da1f955a, 0xb3252c805ddd55e1, 0x32374371ec41dd92}},
		{{0xacd0d84161889bd9, 0x37b5865af6576d68, 0xc04f55ad85753444, 0x6610e945f8c3b087}, {0xa10a552533d54fa0, 0xb847c6e0bf253c3c, 0x0d1f66d491b959cd, 0x62fa94b19030564f}},
		{{0x4936c96be6e929f5, 0x687fd0e143e00578, 0x55ae0cdfda15e8e1, 0x01909aeb357e931b}, {0x889fbbcd70263cc4, 0xee08fbc379cc543a, 0x0dcc14455043d2d9, 0x4c924bc51d02536a}},
	},
	{
		{{0xa92bc4e4cd36d796, 0xe7c25c6c66e5e161, 0xd22b9af35dfea9f0, 0x034e6e8fd33cecaa}, {0x7c9e871159d5ce69, 0xd84b4f0153a00311, 0xa27a5480b706c709, 0x142d3e5decf24615}},
		{{0xdd7707382879c09b, 0x2e135317c3b10bea, 0xc95718be751476e7, 0x53393a386fe8d728}, {0xf3ae16ea8b19dfdb, 0x76327ae35912fe47, 0xfe48cbe7f23cea81, 0x388428a13b817500}},
		{{0x72244193ef809a25, 0xcffd50805d609454, 0x8401ae82d4cec750, 0x4aa85ffa04c55507}, {0x1d71b91c738d2723, 0x488d62d69b68ac8b, 0xd15f5dd62dc8e8c1, 0x08fb43162c30081e}},
		{{0x7f473cd19841f702, 0x34b7e16eba4aefaf, 0xb83b9cba32ca4ab0, 0x734651755f54a6e2}, {0xefa0f2509a5e0836, 0xd68779b9aa16dbb7, 0xa6bad43d0cabfd31, 0x48fd33317e74c257}},
		{{0x20310380d309d372, 0x5aa1c4130d2926d3, 0x91ab5ceeeae4ed18, 0x610d0856ab9c4381}, {0xce4b6bfb5927b29d, 0xef29f40b9d6c6f8a, 0x60035c78dda93ada, 0x02e49ae63a2ef6a2}},
		{{0xce40d6fccf56350b, 0x8599cc975c86745a, 0xd96c1c98d26ff213, 0x60c59190e232004b}, {0x389e88a6696f260a, 0x04cd28ea4df6f62b, 0xed97cad49eebacd1, 0x4501c9770e94dad3}},
		{{0x2645b1bb4370fa63, 0x2b53be2e75ac0ce4, 0x3413136ea960b7fc, 0x4f8266b06a17efa7}, {0x6b6490857e86db72, 0x85a99e90ab6fc1db, 0xf954423420f4fb5d, 0x738979061c6c62d4}},
	},
}

var rawH = [MaxRounds][MaxWidth - 1][4]uint64{
	{
		{0x97900d15329df8d2, 0x22f399bda27c1ad2, 0x54d67cb15de79fad, 0x37090a08208f0408},
		{0x305f528fe33c951f, 0x05af20b14a630150, 0xbfe99cc52fefe9d5, 0x17478b5d49edff9b},
		{0x2e4786a4fc32a199, 0x4d4e055c0fec01c0, 0x933a30fa77706f87, 0x692ec81d639f509b},
		{0x8689a141d3f18682, 0xdb544d795f767548, 0x7f425e9f009098da, 0x2add0436a42508f6},
		{0x41bd2fba6bc6d068, 0x6aa894b9fc25fcbf, 0xa2964ca373bff772, 0x5279e580c49e2c6d},
		{0x8dc434a130b3003f, 0xddf5610c37be3532, 0x8cafd8421f08d27e, 0x03279580bb0b8df0},
		{0xbace8d964c01aa59, 0x3c7b13b01594c77a, 0x7c9ac732727d7c1f, 0x641d01e742187ff9},
	},
	{
		{0x445fc259b28d0a68, 0x493bd49d74248034, 0x8de484ba36bc2377, 0x6750f8fae5cc6785},
		{0x67aefcc394f30146, 0x64c30d5afd2b4aee, 0x65135b30f7ffb397, 0x19f11bd9152b078f},
		{0x2af69bf1d3292950, 0xe796fafdf6a597a3, 0x62c74e1042c573d6, 0x356bbbcc0820f5d7},
		{0x6e78eac0f6ad01e8, 0xe45a0029046f8315, 0x3c4c3f8002a9e353, 0x70481219a36869be},
		{0xb6714ba4c2cbbd0a, 0xc35bed386c9fe194, 0xd05f1f77bd6e168d, 0x6f622cf60c20092c},
		{0x8efae8e1986be169, 0x3487b1f008e01a43, 0x387e727964fac971, 0x5880a8a7ddee0d45},
		{0x3f67328882ed696a, 0x4f614b44e1401587, 0x6cfe621ac6e98ea3, 0x0e8620c53935e16f},
	},
	{
		{0x815430007b135d3f, 0x6ef7a2262051ce76, 0xe37d7c3dbfe29d41, 0x71a2b75b7e09e5cc},
		{0x6f918c293a89d743, 0x7c0cd007ca193892, 0x8c28ee0fc98d936d, 0x0d38ad6f28460ec4},
		{0x8ebe0835e706a443, 0xa868cf96ee4446d3, 0xf9b9b2f7dc2a8b1f, 0x04b86961c7cd1ec0},
		{0xad9dcf83c9517141, 0x7c61d803587f089c, 0xfabf45f42148e7d0, 0x5364b2ac5f31ec57},
		{0x451b621f3162debb, 0xb535174e40a58741, 0x8118d4c2569e1159, 0x1ffe6470e0075aa7},
		{0x891dad9cdbee55a8, 0xd03ce4b9ca4755a7, 0x8ca9028e1e97df51, 0x2086fa561cf79826},
		{0x4182708a07204a26, 0x0093acc22fa006a6, 0x4b61f92a31cac5fe, 0x0c7f1649ca3798a8},
	},
	{
		{0x71872831aba4021a, 0x130a9d9697e0707b, 0x97d1197f3f19c235, 0x39ed0ae06463625a},
		{0x95a0fe44aa7a89c7, 0x9ae4c68ad33e0d26, 0x4a5c36405b0abf05, 0x11c28cce7a291420},
		{0xb2c0fcdef48ea984, 0x0acc2b10304f1fd1, 0x6ce91f03f932bcf9, 0x46b0819e96148306},
		{0x8f215ff5d6529355, 0xa0eb41a32c99dfdb, 0xf881ecb469b89cd9, 0x3e40366f9a3191a9},
		{0xb5e3a4f37db26794, 0xb2da40e6c75385e0, 0x7587ba0df243db76, 0x5336b5473b747a9d},
		{0x9de3caeba9071994, 0xc5139f2a42775f3d, 0x60e5c66ef80270cd, 0x0eddf0e091ae4603},
		{0x6989d6aa1fbad1f6, 0x2b256748032d7061, 0x6447b4f399d3deb1, 0x6de68d01c818afaa},
	},
	{
		{0x628ec7a80cee879b, 0x8c46891ea45d7fa1, 0xf61735f9e3a1f026, 0x39a93e8d561befbd},
		{0x10edb54d80113901, 0x12ffcc8e99ebe9bc, 0x1e1546162f1d8514, 0x4048048903239271},
		{0x8e61463dd12031c5, 0x1e6bb1ebec2979f0, 0xcca64e707024efd2, 0x470c796661912699},
		{0x916414858cd6f529, 0x6c08f3d26fc7694d, 0x5567c76f223608e3, 0x5901c9a0e83813ed},
		{0xf3fb1152f78c7a4e, 0xbdfd3c960d7bb287, 0x505a038bb2a601b2, 0x3451b5a77c3ee0d9},
		{0xa6b178d4facd67bc, 0xbd2d2459b2e38e05, 0xd07988e9b43f4db6, 0x676835e72b83fadf},
		{0x4b8f08d6b3ea3fc8, 0xe4c464dcab2a85ee, 0x09244932b64f14cc, 0x12fee8f47cc3bfac},
	},
	{
		{0x009d2505ca9ba916, 0x2f1f78d709b5332e, 0x8f9fdd79ba58e9e0, 0x55cb85564b042cdf},
		{0xf5728e1d5baa9045, 0x19f160c9cd39bd78, 0xa2dab370d1f22eee, 0x3c6474bfe63d6a6e},
		{0x6c9fc3baa54cf60a, 0x073dcac213d4c6c3, 0x79e1c94c8e4a476a, 0x18da5402d7c25196},
		{0x219da55964688f29, 0x6218a476328d6d86, 0xcac597e64bee271f, 0x316612f7f78c9169},
		{0x4902002715234291, 0x7ab369e488599d18, 0x57d7bc4eec395d54, 0x5e3bcfe9856bc008},
		{0xff7a7d931866124c, 0xef1e9e1a82ddb3a3, 0x1844ac20be32e88d, 0x47ad587ebeb6a2d3},
		{0x4ec000d3f48887df, 0x3d7b8e3a4ff1a949, 0xb90f351a69932ee8, 0x6cb8dfbb4c7764b5},
	},
}
